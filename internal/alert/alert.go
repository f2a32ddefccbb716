// Package alert emails low-stock notifications. Alerts go out asynchronously
// when an item drops below the threshold; a daily summary aggregates the
// day's events from a redis-backed log. Without SMTP or redis configuration
// every call is a no-op.
package alert

import (
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/logistics-dashboard/internal/config"
	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
	"github.com/rogerio-castellano/logistics-dashboard/internal/redissvc"
)

var (
	cfg   config.AlertConfig
	cache *redissvc.RedisService
	log   = zap.NewNop().Sugar()
)

func Configure(c config.AlertConfig, rs *redissvc.RedisService, logger *zap.SugaredLogger) {
	cfg = c
	cache = rs
	if logger != nil {
		log = logger
	}
}

// DailyLowStockLogKey is the redis list the day's low-stock events accumulate in.
const DailyLowStockLogKey = "alerts:lowstock:daily"

// LowStockEvent records one item dropping below the threshold.
type LowStockEvent struct {
	ItemID   int       `json:"item_id"`
	ItemName string    `json:"item_name"`
	Quantity int       `json:"quantity"`
	Time     time.Time `json:"time"`
}

// SendLowStockAlert emails a notification for the given item and logs the
// event for the daily summary. The mail is sent in the background; failures
// are logged, never returned.
func SendLowStockAlert(item models.Item) {
	logLowStockEvent(item)

	if cfg.Server == "" {
		return
	}

	subject := fmt.Sprintf("LOW STOCK: %s down to %d units", item.Name, item.Quantity)
	body := fmt.Sprintf("Item: %s (ID %d)\nStock available: %d\nThreshold: %d\nTime: %s",
		item.Name, item.ID, item.Quantity, models.LowStockThreshold, time.Now().Format(time.RFC3339))

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", cfg.From, cfg.To, subject, body)
	sendMail(msg)
}

func logLowStockEvent(item models.Item) {
	entry := LowStockEvent{
		ItemID:   item.ID,
		ItemName: item.Name,
		Quantity: item.Quantity,
		Time:     time.Now(),
	}
	data, _ := json.Marshal(entry)
	cache.PushLog(DailyLowStockLogKey, data)
}

// StartDailySummaryLoop emails an aggregate of the day's low-stock events at
// the end of each day. Call in a goroutine from main.
func StartDailySummaryLoop(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		SendDailySummary()
	}
}

// SendDailySummary drains the event log and mails one aggregated report.
func SendDailySummary() {
	entries := cache.DrainLog(DailyLowStockLogKey)
	if len(entries) == 0 || cfg.Server == "" {
		return
	}

	var events []LowStockEvent
	itemCounts := make(map[string]int)
	for _, item := range entries {
		var entry LowStockEvent
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			events = append(events, entry)
			itemCounts[entry.ItemName]++
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Low Stock Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total events: <strong>%d</strong></p>", len(events)))

	sb.WriteString("<h3>By Item</h3><ul>")
	for name, count := range itemCounts {
		sb.WriteString(fmt.Sprintf("<li>%s: %d</li>", name, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full Log</h3><ul>")
	for _, entry := range events {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b> at %d units, %s</li>",
			entry.ItemName, entry.Quantity, entry.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")

	msg := strings.Join([]string{
		"From: " + cfg.From,
		"To: " + cfg.To,
		"Subject: Daily Low Stock Report",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		sb.String(),
	}, "\r\n")
	sendMail(msg)
}

func sendMail(msg string) {
	addr := fmt.Sprintf("%s:%s", cfg.Server, cfg.Port)
	auth := smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Server)
	if cfg.AuthDisabled {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, cfg.From, []string{cfg.To}, []byte(msg)); err != nil {
			log.Warnw("failed to send alert email", "error", err)
		}
	}()
}
