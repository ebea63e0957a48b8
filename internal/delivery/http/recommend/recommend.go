package http_recommend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/reeltaste/core/internal/delivery/http/common"
	http_session_middleware "github.com/reeltaste/core/internal/delivery/http/middleware/session"
	usecase_recommend "github.com/reeltaste/core/internal/usecase/recommend"
)

type Controller struct {
	recommend  *usecase_recommend.Usecase
	middleware *http_session_middleware.Middleware
}

func New(
	recommend *usecase_recommend.Usecase,
	middleware *http_session_middleware.Middleware,
) *Controller {
	return &Controller{
		recommend:  recommend,
		middleware: middleware,
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	next := router.Group("/whats-next", c.middleware.SessionRequired())
	next.POST("/spin", c.spin)
	next.POST("/next", c.next)
}

type SpinRequestDTO struct {
	Source string `json:"source" binding:"required,oneof=taste friends community" example:"taste"`
	Filter string `json:"filter" binding:"required,oneof=movie show both" example:"both"`
}

type RecommendationDTO struct {
	Type      string   `json:"type"`
	ContentID string   `json:"content_id"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Genres    []string `json:"genres"`
	Poster    string   `json:"poster"`
	Reason    string   `json:"reason"`
}

type SpinResponseDTO struct {
	Pick       *RecommendationDTO  `json:"pick,omitempty"`
	Alternates []RecommendationDTO `json:"alternates,omitempty"`
	Message    string              `json:"message,omitempty"`
}

func RecommendationToDTO(r usecase_recommend.Recommendation) RecommendationDTO {
	return RecommendationDTO{
		Type:      string(r.Ref.Type),
		ContentID: r.Ref.ID.String(),
		Title:     r.Title,
		Year:      r.Year,
		Genres:    r.Genres,
		Poster:    r.Poster,
		Reason:    r.Reason,
	}
}

func ResultToDTO(res usecase_recommend.SpinResult) SpinResponseDTO {
	resp := SpinResponseDTO{Message: res.Message}
	if res.Pick != nil {
		pick := RecommendationToDTO(*res.Pick)
		resp.Pick = &pick
	}
	for _, alt := range res.Alternates {
		resp.Alternates = append(resp.Alternates, RecommendationToDTO(alt))
	}
	return resp
}

// Spin surfaces a pick for "What's Next"
// @Summary Spin the selector
// @Description Ranks the unrated catalog for the source, shuffles and returns a pick plus alternates. An exhausted pool returns a message instead of a pick.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body SpinRequestDTO true "Source and type filter"
// @Success 200 {object} SpinResponseDTO "Spin result"
// @Failure 400 {object} http_common.ErrorResponse "Invalid source or filter"
// @Security SessionToken
// @Router /whats-next/spin [post]
func (c *Controller) spin(ctx *gin.Context) {
	var req SpinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	res := c.recommend.Spin(
		http_session_middleware.FromContext(ctx),
		usecase_recommend.Source(req.Source),
		usecase_recommend.TypeFilter(req.Filter),
	)
	ctx.JSON(http.StatusOK, ResultToDTO(res))
}

// Next advances the held queue
// @Summary Next pick
// @Description Advances the queue from the previous spin without reshuffling. Changing source or filter respins.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body SpinRequestDTO true "Source and type filter"
// @Success 200 {object} SpinResponseDTO "Next result"
// @Failure 400 {object} http_common.ErrorResponse "Invalid source or filter"
// @Security SessionToken
// @Router /whats-next/next [post]
func (c *Controller) next(ctx *gin.Context) {
	var req SpinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	res := c.recommend.Next(
		http_session_middleware.FromContext(ctx),
		usecase_recommend.Source(req.Source),
		usecase_recommend.TypeFilter(req.Filter),
	)
	ctx.JSON(http.StatusOK, ResultToDTO(res))
}
