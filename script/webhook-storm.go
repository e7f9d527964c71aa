package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/gateway"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/gateway/paypal"
)

// DeliveryResult contains metrics for a single webhook delivery
type DeliveryResult struct {
	StatusCode   int
	Outcome      string
	ResponseTime time.Duration
	Error        error
}

// StormStats contains aggregated delivery statistics
type StormStats struct {
	TotalDeliveries int
	TotalTime       time.Duration
	ResponseTimes   []time.Duration
	StatusCounts    map[int]int
	OutcomeCounts   map[string]int
	ErrorCounts     map[string]int
	Lock            sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent senders")
	deliveries := flag.Int("n", 50, "Number of times the same notification is delivered")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the service")
	orderID := flag.String("order", "", "PayPal order id the notification refers to")
	reference := flag.String("reference", "", "Transaction reference to check afterwards")
	secret := flag.String("secret", "", "PayPal webhook secret used to sign the body")
	eventType := flag.String("event", "CHECKOUT.ORDER.APPROVED", "PayPal event type")
	flag.Parse()

	if *orderID == "" {
		fmt.Fprintln(os.Stderr, "-order is required")
		os.Exit(2)
	}

	body, err := json.Marshal(map[string]any{
		"id":            fmt.Sprintf("WH-STORM-%d", time.Now().UnixNano()),
		"event_type":    *eventType,
		"resource_type": "checkout-order",
		"resource":      map[string]any{"id": *orderID},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode notification:", err)
		os.Exit(1)
	}

	fmt.Printf("Delivering %s for order %s %d times with %d senders\n", *eventType, *orderID, *deliveries, *concurrency)

	stats := &StormStats{
		TotalDeliveries: *deliveries,
		ResponseTimes:   make([]time.Duration, 0, *deliveries),
		StatusCounts:    make(map[int]int),
		OutcomeCounts:   make(map[string]int),
		ErrorCounts:     make(map[string]int),
	}

	jobs := make(chan int, *deliveries)
	for i := 0; i < *deliveries; i++ {
		jobs <- i
	}
	close(jobs)

	client := &http.Client{Timeout: 30 * time.Second}
	webhookURL := *baseURL + "/webhooks/paypal"

	// Release every sender at once to maximize overlap
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for range jobs {
				result := deliver(client, webhookURL, body, *secret)
				record(stats, result)
			}
		}()
	}

	startTime := time.Now()
	close(start)
	wg.Wait()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)

	if *reference != "" {
		printTransaction(client, *baseURL, *reference)
	}

	if stats.OutcomeCounts["applied"] > 1 {
		fmt.Println("❌ notification was applied more than once")
		os.Exit(1)
	}
}

func deliver(client *http.Client, webhookURL string, body []byte, secret string) DeliveryResult {
	req, err := http.NewRequest(http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return DeliveryResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(paypal.SignatureHeader, gateway.SignHMAC(secret, body))
	}

	startTime := time.Now()
	resp, err := client.Do(req)
	result := DeliveryResult{ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Error = err
		return result
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var ack dto.WebhookResponse
		if err := json.Unmarshal(raw, &ack); err != nil {
			result.Error = err
			return result
		}
		result.Outcome = ack.Outcome
		if ack.Ignored {
			result.Outcome = "ignored"
		}
		return result
	}

	var failure dto.ErrorResponse
	if err := json.Unmarshal(raw, &failure); err == nil && failure.Error != "" {
		result.Error = fmt.Errorf("HTTP %d: %s", resp.StatusCode, failure.Error)
	} else {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

func record(stats *StormStats, result DeliveryResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	stats.StatusCounts[result.StatusCode]++
	if result.Error != nil {
		stats.ErrorCounts[result.Error.Error()]++
		return
	}
	stats.OutcomeCounts[result.Outcome]++
}

func printResults(stats *StormStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	percentile := func(p int) time.Duration {
		if len(sorted) == 0 {
			return 0
		}
		return sorted[len(sorted)*p/100]
	}

	fmt.Println("\n================= STORM RESULTS =================")
	fmt.Printf("Deliveries:          %d\n", stats.TotalDeliveries)
	fmt.Printf("Total Time:          %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f deliveries/s\n", float64(stats.TotalDeliveries)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P90 Response:        %v\n", percentile(90))
	fmt.Printf("P99 Response:        %v\n", percentile(99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%-6d: %d\n", code, count)
	}

	fmt.Println("\n----------------- OUTCOMES -----------------")
	for outcome, count := range stats.OutcomeCounts {
		fmt.Printf("%-20s: %d\n", outcome, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}

func printTransaction(client *http.Client, baseURL, reference string) {
	resp, err := client.Get(baseURL + "/api/transactions/" + reference)
	if err != nil {
		fmt.Println("Could not fetch transaction:", err)
		return
	}
	defer resp.Body.Close()

	var txn dto.TransactionResponse
	if err := json.NewDecoder(resp.Body).Decode(&txn); err != nil {
		fmt.Println("Could not decode transaction:", err)
		return
	}

	fmt.Println("\n----------------- TRANSACTION -----------------")
	fmt.Printf("Reference:           %s\n", txn.Reference)
	fmt.Printf("Status:              %s\n", txn.Status)
	if txn.FinalAmount != "" {
		fmt.Printf("Settled:             %s %s\n", txn.FinalAmount, txn.Currency)
	}
}
