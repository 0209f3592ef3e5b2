package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"
)

// PersonPayload is the request body shared by the person routes
type PersonPayload struct {
	ID      uint64 `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
	Birth   string `json:"birth,omitempty"`
	Points  *int64 `json:"points,omitempty"`
}

// APIResponse captures the fields common to all person route responses
type APIResponse struct {
	Msg  string          `json:"msg"`
	ID   uint64          `json:"id,omitempty"`
	User json.RawMessage `json:"user,omitempty"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
	newID        uint64
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	LockedResponses    int
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	StatusCounts       map[int]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

var firstNames = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Leslie", "Tony"}
var surnames = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Knuth", "Lamport", "Hoare"}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	stats := &TestStats{
		MinResponseTime: time.Hour,
		StatusCounts:    make(map[int]int),
		ScenarioStats:   make(map[string]int),
	}

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Printf("Starting load test: %d requests, concurrency %d, delay %dms\n",
		*totalRequests, *concurrency, *delayMs)
	start := time.Now()

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker creates its own records so that updates and
			// deletes against them hit the post-creation lock window.
			var ownedIDs []uint64

			for range jobs {
				result, createdID := runScenario(client, *baseURL, ownedIDs)
				if createdID != 0 {
					ownedIDs = append(ownedIDs, createdID)
				}
				record(stats, result)
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	printStats(stats, time.Since(start))
}

// runScenario picks a random operation against the API. It returns the id of
// a created record, if any, so the caller can target it later.
func runScenario(client *http.Client, baseURL string, ownedIDs []uint64) (TestResult, uint64) {
	switch rand.Intn(5) {
	case 0:
		return doRequest(client, "list", http.MethodGet, baseURL+"/rest_api/users", nil), 0
	case 1:
		points := int64(rand.Intn(20))
		payload := PersonPayload{
			Name:    firstNames[rand.Intn(len(firstNames))],
			Surname: surnames[rand.Intn(len(surnames))],
			Birth:   fmt.Sprintf("19%02d-01-01", rand.Intn(100)),
			Points:  &points,
		}
		result := doRequest(client, "create", http.MethodPost, baseURL+"/rest_api/user", &payload)
		return result, result.newID
	case 2:
		if len(ownedIDs) == 0 {
			return doRequest(client, "list", http.MethodGet, baseURL+"/rest_api/users", nil), 0
		}
		payload := PersonPayload{ID: ownedIDs[rand.Intn(len(ownedIDs))]}
		return doRequest(client, "get", http.MethodGet, baseURL+"/rest_api/user", &payload), 0
	case 3:
		if len(ownedIDs) == 0 {
			return doRequest(client, "list", http.MethodGet, baseURL+"/rest_api/users", nil), 0
		}
		points := int64(rand.Intn(20))
		payload := PersonPayload{
			ID:      ownedIDs[rand.Intn(len(ownedIDs))],
			Name:    firstNames[rand.Intn(len(firstNames))],
			Surname: surnames[rand.Intn(len(surnames))],
			Birth:   "1970-01-01",
			Points:  &points,
		}
		return doRequest(client, "update", http.MethodPut, baseURL+"/rest_api/user", &payload), 0
	default:
		if len(ownedIDs) == 0 {
			return doRequest(client, "list", http.MethodGet, baseURL+"/rest_api/users", nil), 0
		}
		payload := PersonPayload{ID: ownedIDs[rand.Intn(len(ownedIDs))]}
		return doRequest(client, "delete", http.MethodDelete, baseURL+"/rest_api/user", &payload), 0
	}
}

func doRequest(client *http.Client, scenario, method, url string, payload *PersonPayload) TestResult {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return TestResult{Scenario: scenario, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return TestResult{Scenario: scenario, ResponseTime: elapsed, Error: err}
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	_ = json.NewDecoder(resp.Body).Decode(&apiResp)

	result := TestResult{
		Scenario:     scenario,
		Success:      resp.StatusCode < 500,
		ResponseTime: elapsed,
		StatusCode:   resp.StatusCode,
	}

	if scenario == "create" && resp.StatusCode == http.StatusCreated {
		var created struct {
			ID uint64 `json:"id"`
		}
		_ = json.Unmarshal(apiResp.User, &created)
		result.newID = created.ID
	}

	return result
}

func record(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.TotalRequests++
	stats.ScenarioStats[result.Scenario]++
	stats.StatusCounts[result.StatusCode]++

	if result.Error != nil || !result.Success {
		stats.FailedRequests++
	} else {
		stats.SuccessfulRequests++
	}
	if result.StatusCode == http.StatusLocked {
		stats.LockedResponses++
	}

	stats.TotalResponseTime += result.ResponseTime
	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	if result.ResponseTime < stats.MinResponseTime {
		stats.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > stats.MaxResponseTime {
		stats.MaxResponseTime = result.ResponseTime
	}
}

func printStats(stats *TestStats, total time.Duration) {
	fmt.Println("\n=== Load Test Results ===")
	fmt.Printf("Total requests:     %d\n", stats.TotalRequests)
	fmt.Printf("Successful:         %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed:             %d\n", stats.FailedRequests)
	fmt.Printf("Locked (423):       %d\n", stats.LockedResponses)
	fmt.Printf("Total time:         %v\n", total)

	if stats.TotalRequests > 0 {
		fmt.Printf("Avg response time:  %v\n", stats.TotalResponseTime/time.Duration(stats.TotalRequests))
		fmt.Printf("Min response time:  %v\n", stats.MinResponseTime)
		fmt.Printf("Max response time:  %v\n", stats.MaxResponseTime)
		fmt.Printf("Requests/sec:       %.2f\n", float64(stats.TotalRequests)/total.Seconds())
	}

	if len(stats.ResponseTimes) > 0 {
		times := make([]time.Duration, len(stats.ResponseTimes))
		copy(times, stats.ResponseTimes)
		sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
		fmt.Printf("p50 response time:  %v\n", times[len(times)/2])
		fmt.Printf("p95 response time:  %v\n", times[len(times)*95/100])
	}

	fmt.Println("\nRequests per scenario:")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("  %-8s %d\n", scenario, count)
	}

	fmt.Println("\nResponses per status code:")
	for code, count := range stats.StatusCounts {
		fmt.Printf("  %d: %d\n", code, count)
	}
}
