package web

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gcd-cli/gcd/euclid"
	"github.com/gcd-cli/gcd/log"
)

const form = `<title>GCD Calculator</title>
<form action="/gcd" method="post">
  <input type="text" name="n"/>
  <input type="text" name="n"/>
  <button type="submit">Compute GCD</button>
</form>
`

// NewHandler returns the calculator's routes: the input form at / and the
// computation at /gcd.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", getForm)
	mux.HandleFunc("/gcd", postGCD)
	return mux
}

// NewServer wraps NewHandler in an http.Server listening on addr.
func NewServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewHandler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
	}
}

func getForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, form)
}

func postGCD(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("Error parsing form data: %v", err), http.StatusBadRequest)
		return
	}
	unparsed := r.PostForm["n"]
	if len(unparsed) == 0 {
		http.Error(w, "form data has no 'n' parameter", http.StatusBadRequest)
		return
	}
	values := make([]uint64, 0, len(unparsed))
	for _, u := range unparsed {
		v, err := strconv.ParseUint(u, 10, 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("Value for 'n' parameter not a number: %q", u), http.StatusBadRequest)
			return
		}
		values = append(values, v)
	}
	d := euclid.Reduce(values)
	log.Debugf("POST /gcd %s -> %d", euclid.FormatList(values), d)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "The greatest common divisor of the numbers %s is <b>%d</b>\n", euclid.FormatList(values), d)
}
