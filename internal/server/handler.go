package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/quizdeck/quizdeck/internal/store"
)

// QuestionCache is the slice of the store the handler needs.
type QuestionCache interface {
	NextReusable(ctx context.Context, topic string, exclude ...int) (*store.CachedQuestion, error)
	Save(ctx context.Context, topic string, payload store.QuestionPayload) (*store.CachedQuestion, error)
}

// QuestionGenerator produces a fresh question when the cache has none
// to reuse.
type QuestionGenerator interface {
	Generate(ctx context.Context, topic string) (*store.QuestionPayload, error)
}

// Question sources reported to clients.
const (
	SourceDatabase    = "database"
	SourceAIGenerated = "ai_generated"
)

// QuizHandler serves question batches.
type QuizHandler struct {
	cache        QuestionCache
	generator    QuestionGenerator
	defaultTopic string
	batchSize    int
	log          zerolog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(cache QuestionCache, gen QuestionGenerator, cfg *Config, log zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		cache:        cache,
		generator:    gen,
		defaultTopic: cfg.DefaultTopic,
		batchSize:    cfg.BatchSize,
		log:          log,
	}
}

// batchResponse is the wire shape clients consume.
type batchResponse struct {
	Count     int                `json:"count"`
	Questions []questionResponse `json:"questions"`
}

type questionResponse struct {
	ID     int                   `json:"id"`
	Source string                `json:"source"`
	Quiz   store.QuestionPayload `json:"quiz"`
}

// GetIndex godoc
// GET /
func (h *QuizHandler) GetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "quizdeck supplier",
		"message": "GET /quiz or /quiz/:topic for a question batch",
	})
}

// GetQuiz godoc
// GET /quiz
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	h.serveBatch(c, h.defaultTopic)
}

// GetQuizTopic godoc
// GET /quiz/:topic
func (h *QuizHandler) GetQuizTopic(c *gin.Context) {
	h.serveBatch(c, c.Param("topic"))
}

// serveBatch assembles one batch: cached questions with remaining uses
// are served first (least-used order), and the generator fills the
// rest. Fresh questions are cached before serving. Rows already placed
// in this batch are excluded from the cache lookup, so a batch never
// repeats a question — including one saved earlier in the same loop.
func (h *QuizHandler) serveBatch(c *gin.Context, topic string) {
	ctx := c.Request.Context()

	resp := batchResponse{Questions: make([]questionResponse, 0, h.batchSize)}
	served := make([]int, 0, h.batchSize)
	for i := 0; i < h.batchSize; i++ {
		cached, err := h.cache.NextReusable(ctx, topic, served...)
		if err != nil {
			h.log.Error().Err(err).Str("topic", topic).Msg("cache lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assemble question batch"})
			return
		}

		if cached != nil {
			served = append(served, cached.ID)
			resp.Questions = append(resp.Questions, questionResponse{
				ID:     i + 1,
				Source: SourceDatabase,
				Quiz:   cached.Payload,
			})
			continue
		}

		payload, err := h.generator.Generate(ctx, topic)
		if err != nil {
			h.log.Error().Err(err).Str("topic", topic).Msg("question generation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assemble question batch"})
			return
		}
		saved, err := h.cache.Save(ctx, topic, *payload)
		if err != nil {
			// Serving still works without the cache write; the next batch
			// just pays for generation again.
			h.log.Warn().Err(err).Str("topic", topic).Msg("caching generated question failed")
		} else {
			served = append(served, saved.ID)
		}

		resp.Questions = append(resp.Questions, questionResponse{
			ID:     i + 1,
			Source: SourceAIGenerated,
			Quiz:   *payload,
		})
	}

	resp.Count = len(resp.Questions)
	c.JSON(http.StatusOK, resp)
}
