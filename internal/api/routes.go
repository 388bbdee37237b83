package api

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/waris/faraid-engine/internal/batch"
	"github.com/waris/faraid-engine/internal/db"
	"github.com/waris/faraid-engine/internal/faraid"
	"github.com/waris/faraid-engine/pkg/models"
)

// APIHandler wires the faraid engine to HTTP: it validates requests,
// calls into the pure internal/faraid package, and persists/broadcasts
// the result through its collaborators.
type APIHandler struct {
	dbStore      *db.PostgresStore
	wsHub        *Hub
	batchManager *batch.Manager
}

// SetupRouter builds the Gin engine and registers every route.
func SetupRouter(dbStore *db.PostgresStore, wsHub *Hub, batchManager *batch.Manager) *gin.Engine {
	r := gin.Default()

	// Enable CORS — configurable via ALLOWED_ORIGINS env var
	// Production: ALLOWED_ORIGINS=https://faraid.example.com
	// Development: ALLOWED_ORIGINS=http://localhost:3000 (or leave empty for *)
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if allowedOrigins == "" || allowedOrigins == "*" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowed := range strings.Split(allowedOrigins, ",") {
				if strings.TrimSpace(allowed) == origin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	handler := &APIHandler{
		dbStore:      dbStore,
		wsHub:        wsHub,
		batchManager: batchManager,
	}

	// ── Public endpoints (no auth) ─────────────────────────────
	pub := r.Group("/api/v1")
	{
		pub.GET("/health", handler.handleHealth)
		pub.GET("/stream", wsHub.Subscribe)
		pub.GET("/heirs", handler.handleListHeirCategories)
	}

	// ── Protected endpoints (require bearer token if API_AUTH_TOKEN set) ──
	auth := r.Group("/api/v1")
	auth.Use(AuthMiddleware())
	// Rate-limit protected endpoints to 30 req/min per IP (burst=5).
	auth.Use(NewRateLimiter(30, 5).Middleware())
	{
		auth.POST("/calculate", handler.handleCalculate)
		auth.POST("/calculate/haml", handler.handleCalculateHaml)
		auth.POST("/calculate/khuntsa", handler.handleCalculateKhuntsa)

		auth.GET("/history", handler.handleListHistory)
		auth.GET("/history/:id", handler.handleGetHistory)

		// ── Batch cases: Gharqa (simultaneous death), Munasakhot (serial death) ──
		auth.POST("/batch/gharqa", handler.handleCreateGharqaBatch)
		auth.POST("/batch/munasakhot", handler.handleCreateMunasakhotBatch)
		auth.GET("/batch/:id", handler.handleGetBatch)
	}

	// Serve static dashboard, if present.
	r.Static("/dashboard", "./public")

	return r
}

// calculateRequest is the wire shape for POST /api/v1/calculate.
type calculateRequest struct {
	Tirkah string             `json:"tirkah" binding:"required"`
	Heirs  []models.HeirInput `json:"heirs" binding:"required"`
}

func (h *APIHandler) handleCalculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	tirkah, err := decimal.NewFromString(req.Tirkah)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tirkah must be a decimal string"})
		return
	}

	result, err := faraid.Calculate(tirkah, req.Heirs)
	if err != nil {
		writeCalcError(c, err)
		return
	}

	historyID := h.persistCalculation(c.Request.Context(), req.Heirs, result)

	c.JSON(http.StatusOK, gin.H{
		"historyId": historyID,
		"result":    result,
	})
}

// hamlRequest is the wire shape for POST /api/v1/calculate/haml.
type hamlRequest struct {
	Tirkah     string             `json:"tirkah" binding:"required"`
	KnownHeirs []models.HeirInput `json:"knownHeirs" binding:"required"`
}

func (h *APIHandler) handleCalculateHaml(c *gin.Context) {
	var req hamlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	tirkah, err := decimal.NewFromString(req.Tirkah)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tirkah must be a decimal string"})
		return
	}

	scenarios, err := faraid.CalculateHaml(tirkah, req.KnownHeirs)
	if err != nil {
		writeCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, scenarios)
}

// khuntsaRequest is the wire shape for POST /api/v1/calculate/khuntsa.
type khuntsaRequest struct {
	Tirkah         string              `json:"tirkah" binding:"required"`
	KnownHeirs     []models.HeirInput  `json:"knownHeirs" binding:"required"`
	MaleCategory   models.HeirCategory `json:"maleCategory" binding:"required"`
	FemaleCategory models.HeirCategory `json:"femaleCategory" binding:"required"`
	Quantity       int                 `json:"quantity" binding:"required"`
}

func (h *APIHandler) handleCalculateKhuntsa(c *gin.Context) {
	var req khuntsaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	tirkah, err := decimal.NewFromString(req.Tirkah)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tirkah must be a decimal string"})
		return
	}

	scenarios, err := faraid.CalculateKhuntsa(tirkah, req.KnownHeirs, req.MaleCategory, req.FemaleCategory, req.Quantity)
	if err != nil {
		writeCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, scenarios)
}

// gharqaRequest is the wire shape for POST /api/v1/batch/gharqa.
type gharqaRequest struct {
	Cases []models.DeceasedCase `json:"cases" binding:"required"`
}

func (h *APIHandler) handleCreateGharqaBatch(c *gin.Context) {
	var req gharqaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if len(req.Cases) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one deceased case is required"})
		return
	}

	job := h.batchManager.NewGharqaJob(req.Cases)
	results, err := faraid.CalculateGharqa(req.Cases)
	if err != nil {
		h.batchManager.Fail(job.ID, err)
		writeCalcError(c, err)
		return
	}
	h.batchManager.Complete(job.ID, results)
	h.persistBatch(c.Request.Context(), job.ID, string(batch.KindGharqa), "completed", req.Cases, results)
	h.broadcastBatchComplete(job.ID, string(batch.KindGharqa))

	c.JSON(http.StatusCreated, gin.H{"caseId": job.ID, "results": results})
}

// munasakhotRequest is the wire shape for POST /api/v1/batch/munasakhot.
type munasakhotRequest struct {
	Levels []models.MunasakhotLevel `json:"levels" binding:"required"`
}

func (h *APIHandler) handleCreateMunasakhotBatch(c *gin.Context) {
	var req munasakhotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if len(req.Levels) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one level is required"})
		return
	}

	job := h.batchManager.NewMunasakhotJob(req.Levels)
	results, err := faraid.CalculateMunasakhot(req.Levels)
	if err != nil {
		h.batchManager.Fail(job.ID, err)
		writeCalcError(c, err)
		return
	}
	h.batchManager.Complete(job.ID, results)
	h.persistBatch(c.Request.Context(), job.ID, string(batch.KindMunasakhot), "completed", req.Levels, results)
	h.broadcastBatchComplete(job.ID, string(batch.KindMunasakhot))

	c.JSON(http.StatusCreated, gin.H{"caseId": job.ID, "results": results})
}

func (h *APIHandler) handleGetBatch(c *gin.Context) {
	id := c.Param("id")
	job := h.batchManager.Get(id)
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "batch case not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *APIHandler) handleListHistory(c *gin.Context) {
	if h.dbStore == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not connected"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, totalCount, err := h.dbStore.ListHistory(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch calculation history", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       records,
		"totalCount": totalCount,
		"page":       page,
		"limit":      limit,
	})
}

func (h *APIHandler) handleGetHistory(c *gin.Context) {
	if h.dbStore == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not connected"})
		return
	}
	id := c.Param("id")
	rec, err := h.dbStore.GetHistory(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "calculation not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// handleListHeirCategories returns the label-lookup table so clients
// can render a heir picker without hardcoding category IDs.
func (h *APIHandler) handleListHeirCategories(c *gin.Context) {
	infos := make([]models.HeirInfo, 0, len(models.AllCategories))
	for _, cat := range models.AllCategories {
		infos = append(infos, models.Info(cat))
	}
	c.JSON(http.StatusOK, gin.H{"categories": infos})
}

// handleHealth returns engine status for service discovery.
func (h *APIHandler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "operational",
		"engine":      "Faraid Estate-Partition Engine",
		"dbConnected": h.dbStore != nil,
	})
}

// persistCalculation saves a completed calculation and logs rather than
// fails the request if persistence is unavailable or errors — history
// is a collaborator, not part of the core contract with the caller.
func (h *APIHandler) persistCalculation(ctx context.Context, heirs []models.HeirInput, result models.CalculationResult) string {
	if h.dbStore == nil {
		return ""
	}
	id, err := h.dbStore.SaveCalculation(ctx, heirs, result)
	if err != nil {
		log.Printf("Failed to save calculation history: %v", err)
		return ""
	}
	return id
}

func (h *APIHandler) persistBatch(ctx context.Context, id, kind, status string, input, results any) {
	if h.dbStore == nil {
		return
	}
	if err := h.dbStore.SaveBatch(ctx, id, kind, status, input, results); err != nil {
		log.Printf("Failed to save batch history: %v", err)
	}
}

func (h *APIHandler) broadcastBatchComplete(id, kind string) {
	if h.wsHub == nil {
		return
	}
	BroadcastBatchComplete(h.wsHub, id, kind)
}

// writeCalcError maps the engine's error taxonomy to an
// HTTP status.
func writeCalcError(c *gin.Context, err error) {
	calcErr, ok := err.(*faraid.CalcError)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	switch calcErr.Kind {
	case faraid.InvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": calcErr.Msg, "kind": calcErr.Kind})
	case faraid.UnsupportedCase:
		c.JSON(http.StatusNotImplemented, gin.H{"error": calcErr.Msg, "kind": calcErr.Kind})
	case faraid.InvariantViolation:
		c.JSON(http.StatusInternalServerError, gin.H{"error": calcErr.Msg, "kind": calcErr.Kind, "notes": calcErr.Notes})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": calcErr.Msg})
	}
}
