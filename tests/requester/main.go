package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:8080"
	adminID = "100"
)

var filters = []string{"all", "Processing", "Done", "Canceled", "lost"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	var req *http.Request
	if rand.Intn(3) == 0 {
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/admin/orders?status="+filters[rand.Intn(len(filters))], nil)
		// каждый пятый запрос от не-админа должен получить 404
		caller := adminID
		if rand.Intn(5) == 0 {
			caller = fmt.Sprint(rand.Intn(1000) + 1)
		}
		req.Header.Set("X-User-ID", caller)
	} else {
		req, _ = http.NewRequest(http.MethodGet, fmt.Sprintf("%s/users/%d/orders", baseURL, rand.Intn(1000)+1), nil)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println(req.Method, req.URL, "->", resp.Status)
	resp.Body.Close()
}
