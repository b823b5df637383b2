package dashboard

// contains http utils to refresh exchange rates from a remote service

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// get from disk
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// dailyClient returns a client with a disk cache keyed per day, so rate
// refreshes hit the network at most once a day.
func dailyClient() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// rateEndpoint serves latest rates for a base currency as a json object
// whose "rates" property maps currency codes to numbers.
const rateEndpoint = "https://open.er-api.com/v6/latest/"

// fetchRate queries the remote service for the rate converting 'from' into 'to'.
func fetchRate(client *http.Client, from, to Currency) (float64, error) {
	var jobj any
	addr := rateEndpoint + string(from)
	if err := jwget(client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error in wget %s/%s: %w", from, to, err)
	}
	path := "$.rates." + string(to)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s/%s: %q %w", from, to, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %s/%s: %q not a float: %v", from, to, path, jval)
	}
	if val == 0 {
		return 0, fmt.Errorf("empty rate for %s/%s", from, to)
	}
	return val, nil
}

// RefreshRates fetches fresh rates for every ordered pair of the given
// currencies and records them in the table. A pair that cannot be fetched
// keeps its previous value and is reported in the returned error.
func RefreshRates(r *Rates, currencies ...Currency) error {
	if len(currencies) == 0 {
		currencies = Currencies()
	}
	client := dailyClient()
	var failed []string
	for _, from := range currencies {
		for _, to := range currencies {
			if from == to {
				continue
			}
			val, err := fetchRate(client, from, to)
			if err != nil {
				log.Printf("could not refresh %s/%s: %v", from, to, err)
				failed = append(failed, string(from)+"-"+string(to))
				continue
			}
			r.SetRate(Rate{From: from, To: to, Rate: val, Timestamp: time.Now()})
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("could not refresh rates: %v", failed)
	}
	return nil
}
