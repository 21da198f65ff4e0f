package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const numWorkers = 20

var usernames = []string{"alice", "bob", "carol", "dave", "erin"}

var httpClient = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	baseURL := flag.String("url", "http://127.0.0.1:4000", "devstats base url")
	duration := flag.Duration("duration", 10*time.Second, "length of each phase")
	enquiries := flag.Bool("enquiries", false, "include POST /api/enquiries (writes to the enquiry file)")
	flag.Parse()

	fmt.Println("=== DevStats Load Test ===")
	fmt.Printf("Target: %s | Workers: %d | Duration: %s\n\n", *baseURL, numWorkers, *duration)

	fmt.Print("Waiting for server... ")
	if !waitForServer(*baseURL) {
		fmt.Println("FAILED: server not responding")
		return
	}
	fmt.Println("OK")

	// Every username is fetched once so the second phase measures cache hits.
	fmt.Println("\n--- Phase 1: Warm-up (one request per user) ---")
	for _, user := range usernames {
		r := do(http.MethodGet, *baseURL+"/api/stats/leetcode/"+user, "GET leetcode", nil, http.StatusOK)
		fmt.Printf("  %-8s %d %s\n", user, r.status, fmtDur(r.latency))
	}

	fmt.Println("\n--- Phase 2: Cached reads ---")
	runPhase(*duration, func(rng *rand.Rand) result {
		user := usernames[rng.Intn(len(usernames))]
		if rng.Float64() < 0.8 {
			return do(http.MethodGet, *baseURL+"/api/stats/leetcode/"+user, "GET leetcode", nil, http.StatusOK)
		}
		return do(http.MethodGet, *baseURL+"/health", "GET /health", nil, http.StatusOK)
	})

	if !*enquiries {
		return
	}
	fmt.Println("\n--- Phase 3: Enquiry writes ---")
	runPhase(*duration, func(rng *rand.Rand) result {
		body, _ := json.Marshal(map[string]string{
			"name":    usernames[rng.Intn(len(usernames))],
			"email":   "loadtest@example.com",
			"subject": fmt.Sprintf("load %d", rng.Intn(1000)),
			"message": "generated by the load test",
		})
		return do(http.MethodPost, *baseURL+"/api/enquiries", "POST enquiries", body, http.StatusCreated)
	})
}

func waitForServer(baseURL string) bool {
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			return true
		}
		time.Sleep(200 * time.Millisecond)
	}
	return false
}

func do(method, url, endpoint string, body []byte, expected int) result {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return result{endpoint: endpoint, err: true}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != expected}
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 1000)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					results <- workFn(rng)
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps, totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-18s %8s %6s %10s %10s %10s\n", "Endpoint", "Reqs", "Errs", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 68))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-18s %8d %6d %10s %10s %10s\n", ep, s.count, s.errors,
			fmtDur(percentile(s.latencies, 0.50)), fmtDur(percentile(s.latencies, 0.95)), fmtDur(percentile(s.latencies, 0.99)))
	}

	if totalOps == 0 {
		return
	}
	fmt.Println("  " + strings.Repeat("-", 68))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, float64(totalOps)/duration.Seconds())
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := min(int(float64(len(d))*p), len(d)-1)
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
