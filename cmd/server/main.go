// Command server exposes the spelling corrector as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/check?word=<word>
//	GET  /api/suggest?word=<word>
//	GET  /api/verb?form=<form>
//	GET  /api/conjugate?verb=<infinitive>
//	GET  /api/lookup?word=<word>
//	POST /api/text    body: {"text":"..."}
//	POST /api/words   body: {"word":"...","category":"...","gender":"...","number":"...","frequency":N}
//	GET  /api/stats
//
// Configuration comes from flags, with environment fallbacks loaded
// from a .env file when present: ORTOGRAF_ADDR, ORTOGRAF_DICT,
// ORTOGRAF_CUSTOM, ORTOGRAF_REDIS.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	ortograf "github.com/ortografia-es/ortograf"
)

// ---- JSON response types ------------------------------------------------

type checkResponse struct {
	Word    string `json:"word"`
	Correct bool   `json:"correct"`
}

type suggestResponse struct {
	Word        string                `json:"word"`
	Correct     bool                  `json:"correct"`
	Suggestions []ortograf.Suggestion `json:"suggestions"`
}

type verbResponse struct {
	Form       string `json:"form"`
	Valid      bool   `json:"valid"`
	Infinitive string `json:"infinitive,omitempty"`
	Gerund     bool   `json:"gerund"`
}

type lookupResponse struct {
	Word      string `json:"word"`
	Found     bool   `json:"found"`
	Category  string `json:"category,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Number    string `json:"number,omitempty"`
	Extra     string `json:"extra,omitempty"`
	Frequency int    `json:"frequency,omitempty"`
}

type textRequest struct {
	Text string `json:"text"`
}

type textResponse struct {
	Tokens       []ortograf.TokenResult `json:"tokens"`
	Misspellings int                    `json:"misspellings"`
}

type addWordRequest struct {
	Word      string `json:"word"`
	Category  string `json:"category"`
	Gender    string `json:"gender"`
	Number    string `json:"number"`
	Extra     string `json:"extra"`
	Frequency int    `json:"frequency"`
}

type statsResponse struct {
	Language    string `json:"language"`
	Words       int    `json:"words"`
	Infinitives int    `json:"infinitives"`
	Irregular   int    `json:"irregular_forms"`
	Pronominal  int    `json:"pronominal_verbs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// app owns the shared engine state. Queries are read-only and safe to
// serve concurrently; adding a word takes the write lock.
type app struct {
	mu      sync.RWMutex
	checker *ortograf.Checker
	custom  *ortograf.CustomDict
}

// ---- handlers -----------------------------------------------------------

func handleCheck(a *app) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		a.mu.RLock()
		correct := a.checker.IsCorrect(word)
		a.mu.RUnlock()
		writeJSON(w, http.StatusOK, checkResponse{Word: word, Correct: correct})
	}
}

func handleSuggest(a *app) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		a.mu.RLock()
		correct := a.checker.IsCorrect(word)
		var suggestions []ortograf.Suggestion
		if !correct {
			suggestions = a.checker.Suggestions(word)
		}
		a.mu.RUnlock()
		if suggestions == nil {
			suggestions = []ortograf.Suggestion{}
		}
		writeJSON(w, http.StatusOK, suggestResponse{
			Word:        word,
			Correct:     correct,
			Suggestions: suggestions,
		})
	}
}

func handleVerb(a *app) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		form := r.URL.Query().Get("form")
		if form == "" {
			writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
			return
		}
		a.mu.RLock()
		valid := a.checker.Verbs().IsValidVerbForm(form)
		infinitive, _ := a.checker.Infinitive(form)
		gerund := a.checker.Verbs().IsGerund(form)
		a.mu.RUnlock()
		status := http.StatusOK
		if !valid {
			status = http.StatusNotFound
		}
		writeJSON(w, status, verbResponse{
			Form:       form,
			Valid:      valid,
			Infinitive: infinitive,
			Gerund:     gerund,
		})
	}
}

func handleConjugate(a *app) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		verb := r.URL.Query().Get("verb")
		if verb == "" {
			writeError(w, http.StatusBadRequest, "missing 'verb' query parameter")
			return
		}
		a.mu.RLock()
		table, err := a.checker.Verbs().Conjugate(verb)
		a.mu.RUnlock()
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, table)
	}
}

func handleText(a *app) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}
		a.mu.RLock()
		tokens := a.checker.CheckText(req.Text)
		a.mu.RUnlock()
		if tokens == nil {
			tokens = []ortograf.TokenResult{}
		}
		bad := 0
		for _, tok := range tokens {
			if !tok.Correct {
				bad++
			}
		}
		writeJSON(w, http.StatusOK, textResponse{Tokens: tokens, Misspellings: bad})
	}
}

func handleLookup(a *app) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		a.mu.RLock()
		info, found := a.checker.Dict().GetOrDerive(word)
		a.mu.RUnlock()
		if !found {
			writeJSON(w, http.StatusNotFound, lookupResponse{Word: word})
			return
		}
		writeJSON(w, http.StatusOK, lookupResponse{
			Word:      word,
			Found:     true,
			Category:  info.Category.String(),
			Gender:    info.Gender.String(),
			Number:    info.Number.String(),
			Extra:     info.Extra,
			Frequency: info.Frequency,
		})
	}
}

func handleAddWord(a *app, customPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req addWordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'word' field")
			return
		}
		word := strings.TrimSpace(req.Word)

		info := ortograf.DefaultWordInfo()
		info.Category = ortograf.ParseCategory(req.Category)
		info.Gender = ortograf.ParseGender(req.Gender)
		info.Number = ortograf.ParseNumber(req.Number)
		info.Extra = req.Extra
		if req.Frequency > 0 {
			info.Frequency = req.Frequency
		}

		a.mu.Lock()
		a.checker.Dict().Insert(word, info)
		a.mu.Unlock()

		if a.custom != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := a.custom.Add(ctx, word); err != nil {
				log.Printf("custom dictionary: %v", err)
			}
		}
		if customPath != "" {
			if err := ortograf.AppendCustomWord(customPath, word, info); err != nil {
				log.Printf("custom dictionary file: %v", err)
			}
		}

		writeJSON(w, http.StatusCreated, checkResponse{Word: word, Correct: true})
	}
}

func handleStats(a *app) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		a.mu.RLock()
		resp := statsResponse{
			Language:    a.checker.Language().Name(),
			Words:       a.checker.Dict().Len(),
			Infinitives: a.checker.Verbs().InfinitiveCount(),
			Irregular:   a.checker.Verbs().IrregularCount(),
			Pronominal:  a.checker.Verbs().PronominalCount(),
		}
		a.mu.RUnlock()
		writeJSON(w, http.StatusOK, resp)
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	addr := flag.String("addr", getenv("ORTOGRAF_ADDR", ":8080"), "listen address")
	dictPath := flag.String("dict", getenv("ORTOGRAF_DICT", "data/es.dict"), "path to the dictionary file")
	customPath := flag.String("custom", getenv("ORTOGRAF_CUSTOM", ""), "path to the custom word file (optional)")
	redisAddr := flag.String("redis", getenv("ORTOGRAF_REDIS", ""), "redis address for the custom dictionary (optional)")
	flag.Parse()

	log.Printf("loading dictionary from %s …", *dictPath)
	dict, err := ortograf.LoadDictionary(*dictPath)
	if err != nil {
		log.Fatalf("failed to load dictionary: %v", err)
	}
	if *customPath != "" {
		if n, err := ortograf.AppendFromFile(dict, *customPath); err != nil {
			log.Printf("custom dictionary file: %v", err)
		} else {
			log.Printf("loaded %d custom words from %s", n, *customPath)
		}
	}

	lang := ortograf.NewSpanish()

	var custom *ortograf.CustomDict
	if *redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: *redisAddr})
		custom = ortograf.NewCustomDict(client, lang.Code())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if n, err := custom.LoadInto(ctx, dict); err != nil {
			log.Printf("redis custom dictionary: %v", err)
		} else {
			log.Printf("loaded %d custom words from redis", n)
		}
		cancel()
	}

	checker := ortograf.NewCheckerFromTrie(dict, lang)
	log.Printf("dictionary ready: %d words, %d infinitives", dict.Len(), checker.Verbs().InfinitiveCount())

	a := &app{checker: checker, custom: custom}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/check", handleCheck(a))
	mux.HandleFunc("/api/suggest", handleSuggest(a))
	mux.HandleFunc("/api/verb", handleVerb(a))
	mux.HandleFunc("/api/conjugate", handleConjugate(a))
	mux.HandleFunc("/api/lookup", handleLookup(a))
	mux.HandleFunc("/api/text", handleText(a))
	mux.HandleFunc("/api/words", handleAddWord(a, *customPath))
	mux.HandleFunc("/api/stats", handleStats(a))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
