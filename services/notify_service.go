package services

import "log"

// Fanout delivers one message to each recipient independently: a failed
// delivery is logged and skipped, never aborting the batch. The return value
// is the number of successful deliveries. There are no retries and no
// concurrency; worst-case latency is bounded by the recipient count.
func Fanout(sender Sender, recipients []int64, text string, keyboard interface{}) int {
	success := 0
	for _, chatID := range recipients {
		if err := sender.SendMessage(chatID, text, keyboard); err != nil {
			log.Printf("fan-out: failed to deliver to %d: %v", chatID, err)
			continue
		}
		success++
	}
	return success
}
