// Package server provides the local HTTP API for forecast data.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"flowcast/internal/forecast"
	"flowcast/internal/model"
	"flowcast/internal/store"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr        string
	HorizonDays int
	Currency    string
}

// Status is served at /v1/status.
type Status struct {
	StartedAt    time.Time `json:"started_at"`
	RequestCount int64     `json:"request_count"`
	HorizonDays  int       `json:"horizon_days"`
	Currency     string    `json:"currency"`
	Transactions int       `json:"transactions"`
	LastError    string    `json:"last_error,omitempty"`
}

// ForecastResponse is the /v1/forecast payload.
type ForecastResponse struct {
	ReferenceDate string      `json:"reference_date"`
	HorizonDays   int         `json:"horizon_days"`
	Points        []pointJSON `json:"points"`
	Summary       summaryJSON `json:"summary"`
}

type pointJSON struct {
	Date    string `json:"date"`
	Balance string `json:"balance"`
	Change  string `json:"change"`
}

type summaryJSON struct {
	Final string `json:"final"`
	Min   string `json:"min"`
	Max   string `json:"max"`
}

// CompareRequest is the POST /v1/scenarios/compare body.
type CompareRequest struct {
	HorizonDays int                `json:"horizon_days,omitempty"`
	Scenarios   []scenarioSpecJSON `json:"scenarios"`
}

type scenarioSpecJSON struct {
	Name              string `json:"name"`
	IncomeMultiplier  string `json:"income_multiplier"`
	ExpenseMultiplier string `json:"expense_multiplier"`
}

// CompareResponse is the POST /v1/scenarios/compare payload.
type CompareResponse struct {
	ReferenceDate string               `json:"reference_date"`
	HorizonDays   int                  `json:"horizon_days"`
	Results       []scenarioResultJSON `json:"results"`
}

type scenarioResultJSON struct {
	ID                int         `json:"id"`
	Name              string      `json:"name"`
	IncomeMultiplier  string      `json:"income_multiplier"`
	ExpenseMultiplier string      `json:"expense_multiplier"`
	Summary           summaryJSON `json:"summary"`
	Points            []pointJSON `json:"points"`
}

type transactionJSON struct {
	ID            int64  `json:"id"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	Category      string `json:"category,omitempty"`
	Date          string `json:"date"`
	Recurrence    string `json:"recurrence"`
	RecurrenceEnd string `json:"recurrence_end,omitempty"`
}

// Service serves forecast queries over HTTP from a transaction store.
type Service struct {
	cfg Config
	db  *store.Store

	mu           sync.RWMutex
	startedAt    time.Time
	requestCount int64
	lastError    string
}

// New returns a new server service backed by the given store.
func New(cfg Config, db *store.Store) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8390"
	}
	if cfg.HorizonDays < 1 {
		cfg.HorizonDays = 30
	}
	if cfg.Currency == "" {
		cfg.Currency = "$"
	}

	return &Service{
		cfg:       cfg,
		db:        db,
		startedAt: time.Now(),
	}
}

// Run serves HTTP endpoints until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Printf("flowcast server listening on %s", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

// Handler returns the HTTP mux for the API endpoints.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/forecast", s.handleForecast)
	mux.HandleFunc("/v1/transactions", s.handleTransactions)
	mux.HandleFunc("/v1/scenarios/compare", s.handleCompare)
	return mux
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.countRequest()

	count, err := s.db.Count(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	s.mu.RLock()
	status := Status{
		StartedAt:    s.startedAt,
		RequestCount: s.requestCount,
		HorizonDays:  s.cfg.HorizonDays,
		Currency:     s.cfg.Currency,
		Transactions: count,
		LastError:    s.lastError,
	}
	s.mu.RUnlock()

	writeJSON(w, status)
}

func (s *Service) handleForecast(w http.ResponseWriter, r *http.Request) {
	s.countRequest()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	days := s.cfg.HorizonDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 3650 {
			http.Error(w, "days must be an integer between 1 and 3650", http.StatusBadRequest)
			return
		}
		days = n
	}

	txs, err := s.db.GetAll(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	ref := forecast.Day(time.Now())
	points := forecast.ProjectBaseline(txs, ref, days)

	writeJSON(w, ForecastResponse{
		ReferenceDate: ref.Format("2006-01-02"),
		HorizonDays:   days,
		Points:        pointsJSON(points),
		Summary:       summarize(points),
	})
}

func (s *Service) handleTransactions(w http.ResponseWriter, r *http.Request) {
	s.countRequest()

	switch r.Method {
	case http.MethodGet:
		txs, err := s.db.GetAll(r.Context())
		if err != nil {
			s.fail(w, err)
			return
		}
		out := make([]transactionJSON, 0, len(txs))
		for _, tx := range txs {
			out = append(out, transactionToJSON(tx))
		}
		writeJSON(w, out)

	case http.MethodPost:
		var in transactionJSON
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		tx, err := transactionFromJSON(in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.db.Create(r.Context(), &tx); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, transactionToJSON(tx))

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Service) handleCompare(w http.ResponseWriter, r *http.Request) {
	s.countRequest()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	days := req.HorizonDays
	if days < 1 {
		days = s.cfg.HorizonDays
	}
	if days > 3650 {
		http.Error(w, "horizon_days must be at most 3650", http.StatusBadRequest)
		return
	}

	scenarios := make([]model.Scenario, 0, len(req.Scenarios))
	for i, spec := range req.Scenarios {
		sc, err := scenarioFromJSON(i+1, spec)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		scenarios = append(scenarios, sc)
	}

	txs, err := s.db.GetAll(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	ref := forecast.Day(time.Now())
	results := forecast.RunScenarios(scenarios, txs, ref, days)
	summaries := forecast.Summarize(results)

	out := CompareResponse{
		ReferenceDate: ref.Format("2006-01-02"),
		HorizonDays:   days,
		Results:       make([]scenarioResultJSON, 0, len(summaries)),
	}
	for _, sum := range summaries {
		res := results[sum.Scenario.ID]
		out.Results = append(out.Results, scenarioResultJSON{
			ID:                sum.Scenario.ID,
			Name:              sum.Scenario.Name,
			IncomeMultiplier:  sum.Scenario.IncomeMultiplier.String(),
			ExpenseMultiplier: sum.Scenario.ExpenseMultiplier.String(),
			Summary: summaryJSON{
				Final: sum.Final.String(),
				Min:   sum.Min.String(),
				Max:   sum.Max.String(),
			},
			Points: pointsJSON(res.Forecast),
		})
	}

	writeJSON(w, out)
}

func (s *Service) countRequest() {
	s.mu.Lock()
	s.requestCount++
	s.mu.Unlock()
}

func (s *Service) fail(w http.ResponseWriter, err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
	log.Printf("flowcast server error: %v", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func pointsJSON(points []model.ForecastPoint) []pointJSON {
	out := make([]pointJSON, 0, len(points))
	for _, p := range points {
		out = append(out, pointJSON{
			Date:    p.Date.Format("2006-01-02"),
			Balance: p.Balance.String(),
			Change:  p.Change.String(),
		})
	}
	return out
}

func summarize(points []model.ForecastPoint) summaryJSON {
	if len(points) == 0 {
		return summaryJSON{Final: "0", Min: "0", Max: "0"}
	}
	final := points[len(points)-1].Balance
	min, max := points[0].Balance, points[0].Balance
	for _, p := range points[1:] {
		if p.Balance.LessThan(min) {
			min = p.Balance
		}
		if p.Balance.GreaterThan(max) {
			max = p.Balance
		}
	}
	return summaryJSON{Final: final.String(), Min: min.String(), Max: max.String()}
}

func scenarioFromJSON(id int, spec scenarioSpecJSON) (model.Scenario, error) {
	income, err := decimal.NewFromString(spec.IncomeMultiplier)
	if err != nil || income.IsNegative() {
		return model.Scenario{}, fmt.Errorf("scenario %q: invalid income_multiplier", spec.Name)
	}
	expense, err := decimal.NewFromString(spec.ExpenseMultiplier)
	if err != nil || expense.IsNegative() {
		return model.Scenario{}, fmt.Errorf("scenario %q: invalid expense_multiplier", spec.Name)
	}
	name := spec.Name
	if name == "" {
		name = fmt.Sprintf("Scenario %d", id)
	}
	return model.Scenario{
		ID:                id,
		Name:              name,
		IncomeMultiplier:  income,
		ExpenseMultiplier: expense,
	}, nil
}

func transactionToJSON(tx model.Transaction) transactionJSON {
	out := transactionJSON{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Category:    tx.Category,
		Date:        tx.Date.Format("2006-01-02"),
		Recurrence:  string(tx.Recurrence),
	}
	if tx.RecurrenceEnd != nil {
		out.RecurrenceEnd = tx.RecurrenceEnd.Format("2006-01-02")
	}
	return out
}

func transactionFromJSON(in transactionJSON) (model.Transaction, error) {
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount %q", in.Amount)
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", in.Date)
	}

	tx := model.Transaction{
		Type:        model.TransactionType(in.Type),
		Amount:      amount,
		Description: in.Description,
		Category:    in.Category,
		Date:        date,
		Recurrence:  model.Recurrence(in.Recurrence),
	}
	if tx.Recurrence == "" {
		tx.Recurrence = model.RecurNone
	}
	if in.RecurrenceEnd != "" {
		end, err := time.Parse("2006-01-02", in.RecurrenceEnd)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("invalid recurrence_end %q, want YYYY-MM-DD", in.RecurrenceEnd)
		}
		tx.RecurrenceEnd = &end
	}
	return tx, nil
}
