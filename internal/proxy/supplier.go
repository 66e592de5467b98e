package proxy

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Supplier hands out working proxies in round-robin order
type Supplier interface {
	Get() string
}

type supplier struct {
	proxies []string
	current int
	mutex   sync.Mutex
}

// Checker reports whether a proxy can reach testURL.
type Checker func(ctx context.Context, proxyURL, testURL string) bool

// NewSupplier validates the candidate proxies in parallel and keeps the
// working ones. A nil checker uses an HTTP GET through the proxy.
func NewSupplier(ctx context.Context, proxies []string, testURL string, check Checker) Supplier {
	if len(proxies) == 0 {
		return &supplier{}
	}
	if check == nil {
		check = isProxyValid
	}

	log.Infof("🔄 Testing %d proxies against %s...", len(proxies), testURL)

	results := make([]bool, len(proxies))
	semaphore := make(chan struct{}, 16)

	var wg sync.WaitGroup
	for i, proxyURL := range proxies {
		wg.Add(1)
		go func() {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[i] = check(ctx, proxyURL, testURL)
			if results[i] {
				log.Infof("✅ Proxy %s is working", proxyURL)
			} else {
				log.Warnf("❌ Proxy %s is not working, skipping", proxyURL)
			}
		}()
	}
	wg.Wait()

	// keep configuration order so rotation is predictable
	valid := make([]string, 0, len(proxies))
	for i, ok := range results {
		if ok {
			valid = append(valid, proxies[i])
		}
	}

	log.Infof("✅ Proxy supplier ready with %d of %d proxies", len(valid), len(proxies))
	return &supplier{proxies: valid}
}

// Get returns the next proxy URL, or "" when none are available
func (p *supplier) Get() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if len(p.proxies) == 0 {
		return ""
	}

	proxy := p.proxies[p.current]
	p.current = (p.current + 1) % len(p.proxies)
	return proxy
}

func isProxyValid(ctx context.Context, proxyURL, testURL string) bool {
	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(0).
		SetProxy(proxyURL)
	defer client.Close()

	resp, err := client.R().
		SetContext(ctx).
		Get(testURL)
	if err != nil {
		log.Debugf("Proxy test failed for %s: %v", proxyURL, err)
		return false
	}

	// any HTTP answer proves the proxy forwards traffic
	return resp.StatusCode() > 0
}
