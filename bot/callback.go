package bot

import (
	"strconv"
	"strings"

	"github.com/milliybrend/reklama-bot/utils"
)

// CallbackKind tags a decoded button token.
type CallbackKind int

const (
	CallbackUnknown CallbackKind = iota

	// Customer flow
	CallbackService   // service selection; Token is the catalog callback id
	CallbackBudget    // budget selection; Token is the budget token
	CallbackNoFile    // explicit "no file"
	CallbackConfirmOrder
	CallbackEditOrder
	CallbackStartOrder
	CallbackBackMain
	CallbackPortfolio // portfolio category; Token is the category callback id

	// Admin panel navigation
	CallbackAdminOrders    // newest orders
	CallbackAdminNewOrders // newest orders still NEW
	CallbackAdminSearch
	CallbackAdminChangeStatus
	CallbackAdminBroadcast
	CallbackAdminCatalog
	CallbackAdminSettings
	CallbackAdminWorkers
	CallbackAdminBack // back to the admin menu

	// Admin actions with parameters
	CallbackStatus           // OrderID + Status
	CallbackBroadcastConfirm
	CallbackBroadcastCancel
	CallbackCatalogAddService
	CallbackCatalogDelService // menu listing deletable services
	CallbackCatalogAddCategory
	CallbackCatalogDelCategory
	CallbackCatalogAddItem
	CallbackCatalogDelItem
	CallbackDeleteService  // RowID
	CallbackDeleteCategory // RowID
	CallbackDeleteItem     // RowID
	CallbackItemCategory   // Token is the chosen category callback id
	CallbackSetting        // SettingKey
	CallbackWorkerAdd
	CallbackWorkerRemove // WorkerID
	CallbackReplyQuestion // RowID is the question id
)

// Callback is a decoded button token: the kind plus whatever parameters were
// embedded in it. Decoding happens once at the boundary; handlers never split
// raw strings themselves.
type Callback struct {
	Kind       CallbackKind
	Token      string
	OrderID    string
	Status     string
	RowID      uint
	WorkerID   int64
	SettingKey string
}

var fixedCallbacks = map[string]CallbackKind{
	"no_file":              CallbackNoFile,
	"confirm_order":        CallbackConfirmOrder,
	"edit_order":           CallbackEditOrder,
	"start_order":          CallbackStartOrder,
	"back_main":            CallbackBackMain,
	"admin_orders":         CallbackAdminOrders,
	"admin_new_orders":     CallbackAdminNewOrders,
	"admin_search":         CallbackAdminSearch,
	"admin_change_status":  CallbackAdminChangeStatus,
	"admin_broadcast":      CallbackAdminBroadcast,
	"admin_catalog":        CallbackAdminCatalog,
	"admin_settings":       CallbackAdminSettings,
	"admin_workers":        CallbackAdminWorkers,
	"admin_back":           CallbackAdminBack,
	"broadcast_confirm":    CallbackBroadcastConfirm,
	"broadcast_cancel":     CallbackBroadcastCancel,
	"catalog_add_service":  CallbackCatalogAddService,
	"catalog_del_service":  CallbackCatalogDelService,
	"catalog_add_category": CallbackCatalogAddCategory,
	"catalog_del_category": CallbackCatalogDelCategory,
	"catalog_add_item":     CallbackCatalogAddItem,
	"catalog_del_item":     CallbackCatalogDelItem,
	"worker_add":           CallbackWorkerAdd,
}

var settingCallbacks = map[string]string{
	"set_phone1":   "phone1",
	"set_phone2":   "phone2",
	"set_telegram": "telegram",
	"set_address":  "address",
	"set_about":    "about_text",
}

// DecodeCallback parses a raw button token into its tagged form. Unknown or
// malformed tokens decode to CallbackUnknown and are ignored by the engines.
func DecodeCallback(data string) Callback {
	if kind, ok := fixedCallbacks[data]; ok {
		return Callback{Kind: kind}
	}
	if key, ok := settingCallbacks[data]; ok {
		return Callback{Kind: CallbackSetting, SettingKey: key}
	}

	switch {
	case strings.HasPrefix(data, "status_"):
		return decodeStatus(data)
	case strings.HasPrefix(data, "svc_del_"):
		return decodeRowID(data, "svc_del_", CallbackDeleteService)
	case strings.HasPrefix(data, "cat_del_"):
		return decodeRowID(data, "cat_del_", CallbackDeleteCategory)
	case strings.HasPrefix(data, "item_del_"):
		return decodeRowID(data, "item_del_", CallbackDeleteItem)
	case strings.HasPrefix(data, "reply_q_"):
		return decodeRowID(data, "reply_q_", CallbackReplyQuestion)
	case strings.HasPrefix(data, "worker_del_"):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, "worker_del_"), 10, 64)
		if err != nil {
			return Callback{Kind: CallbackUnknown}
		}
		return Callback{Kind: CallbackWorkerRemove, WorkerID: id}
	case strings.HasPrefix(data, "itemcat_"):
		return Callback{Kind: CallbackItemCategory, Token: strings.TrimPrefix(data, "itemcat_")}
	case strings.HasPrefix(data, "budget_"):
		return Callback{Kind: CallbackBudget, Token: data}
	case strings.HasPrefix(data, "service_"):
		return Callback{Kind: CallbackService, Token: data}
	case strings.HasPrefix(data, "portfolio_"):
		return Callback{Kind: CallbackPortfolio, Token: data}
	}

	return Callback{Kind: CallbackUnknown}
}

// decodeStatus parses status_<order-id>_<status>. The status itself may
// contain underscores and spaces, so only the first separator after the order
// id counts.
func decodeStatus(data string) Callback {
	rest := strings.TrimPrefix(data, "status_")
	sep := strings.Index(rest, "_")
	if sep <= 0 || sep == len(rest)-1 {
		return Callback{Kind: CallbackUnknown}
	}
	orderID, ok := utils.NormalizeOrderID(rest[:sep])
	if !ok {
		return Callback{Kind: CallbackUnknown}
	}
	return Callback{Kind: CallbackStatus, OrderID: orderID, Status: rest[sep+1:]}
}

func decodeRowID(data, prefix string, kind CallbackKind) Callback {
	id, err := strconv.ParseUint(strings.TrimPrefix(data, prefix), 10, 32)
	if err != nil {
		return Callback{Kind: CallbackUnknown}
	}
	return Callback{Kind: kind, RowID: uint(id)}
}
