package http_club

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	http_common "github.com/reeltaste/core/internal/delivery/http/common"
	http_session_middleware "github.com/reeltaste/core/internal/delivery/http/middleware/session"
	ws_club "github.com/reeltaste/core/internal/delivery/ws/club"
	"github.com/reeltaste/core/internal/model"
	usecase_club "github.com/reeltaste/core/internal/usecase/club"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Controller struct {
	uc         *usecase_club.Usecase
	hub        *ws_club.Hub
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	uc *usecase_club.Usecase,
	hub *ws_club.Hub,
	middleware *http_session_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		uc:         uc,
		hub:        hub,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	clubs := router.Group("/clubs", c.middleware.SessionRequired())
	clubs.GET("", c.list)
	clubs.POST("", c.create)
	clubs.GET("/:club_id", c.byID)
	clubs.POST("/:club_id/join", c.join)
	clubs.GET("/:club_id/ws", c.clubWS)

	clubs.POST("/:club_id/messages", c.sendMessage)
	clubs.POST("/:club_id/messages/:message_id/reactions", c.toggleMessageReaction)

	clubs.POST("/:club_id/polls", c.sendPoll)
	clubs.POST("/:club_id/polls/:poll_id/vote", c.votePoll)

	clubs.POST("/:club_id/predictions", c.addPrediction)
	clubs.POST("/:club_id/predictions/:prediction_id/lock", c.lockPrediction)
	clubs.POST("/:club_id/predictions/:prediction_id/reveal", c.revealPrediction)
	clubs.POST("/:club_id/predictions/:prediction_id/vote", c.votePrediction)
}

type ClubMessageResponseDTO struct {
	ID        string              `json:"id"`
	AuthorID  string              `json:"author_id"`
	Text      string              `json:"text"`
	Spoiler   bool                `json:"spoiler"`
	SentAt    time.Time           `json:"sent_at"`
	Type      string              `json:"type,omitempty"`
	ContentID string              `json:"content_id,omitempty"`
	Reactions map[string][]string `json:"reactions"`
}

func MessageToDTO(m model.ClubMessage) ClubMessageResponseDTO {
	dto := ClubMessageResponseDTO{
		ID:        m.ID.String(),
		AuthorID:  m.AuthorID.String(),
		Text:      m.Text,
		Spoiler:   m.Spoiler,
		SentAt:    m.SentAt,
		Reactions: make(map[string][]string, len(m.Reactions)),
	}
	if m.Ref != nil {
		dto.Type = string(m.Ref.Type)
		dto.ContentID = m.Ref.ID.String()
	}
	for emoji, users := range m.Reactions {
		ids := make([]string, 0, len(users))
		for _, id := range users {
			ids = append(ids, id.String())
		}
		dto.Reactions[emoji] = ids
	}
	return dto
}

type PollOptionResponseDTO struct {
	ID     string   `json:"id"`
	Text   string   `json:"text"`
	Voters []string `json:"voters"`
}

type PollResponseDTO struct {
	ID       string                  `json:"id"`
	AuthorID string                  `json:"author_id"`
	Question string                  `json:"question"`
	Options  []PollOptionResponseDTO `json:"options"`
	ClosesAt time.Time               `json:"closes_at"`
	PostedAt time.Time               `json:"posted_at"`
}

func PollToDTO(p model.Poll) PollResponseDTO {
	options := make([]PollOptionResponseDTO, 0, len(p.Options))
	for _, opt := range p.Options {
		voters := make([]string, 0, len(opt.Voters))
		for _, id := range opt.Voters {
			voters = append(voters, id.String())
		}
		options = append(options, PollOptionResponseDTO{
			ID:     opt.ID.String(),
			Text:   opt.Text,
			Voters: voters,
		})
	}
	return PollResponseDTO{
		ID:       p.ID.String(),
		AuthorID: p.AuthorID.String(),
		Question: p.Question,
		Options:  options,
		ClosesAt: p.ClosesAt,
		PostedAt: p.PostedAt,
	}
}

type PredictionResponseDTO struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	Type       string    `json:"type"`
	ContentID  string    `json:"content_id"`
	Text       string    `json:"text"`
	Status     string    `json:"status"`
	MadeAt     time.Time `json:"made_at"`
	LockedAt   time.Time `json:"locked_at,omitempty"`
	RevealedAt time.Time `json:"revealed_at,omitempty"`
	Result     string    `json:"result,omitempty"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
}

func PredictionToDTO(p model.Prediction) PredictionResponseDTO {
	return PredictionResponseDTO{
		ID:         p.ID.String(),
		AuthorID:   p.AuthorID.String(),
		Type:       string(p.Ref.Type),
		ContentID:  p.Ref.ID.String(),
		Text:       p.Text,
		Status:     string(p.Status),
		MadeAt:     p.MadeAt,
		LockedAt:   p.LockedAt,
		RevealedAt: p.RevealedAt,
		Result:     p.Result,
		Upvotes:    len(p.Upvotes),
		Downvotes:  len(p.Downvotes),
	}
}

type ClubResponseDTO struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Members     []string                 `json:"members"`
	Messages    []ClubMessageResponseDTO `json:"messages"`
	Polls       []PollResponseDTO        `json:"polls"`
	Predictions []PredictionResponseDTO  `json:"predictions"`
	CreatedAt   time.Time                `json:"created_at"`
}

func ClubToDTO(club model.Club) ClubResponseDTO {
	members := make([]string, 0, len(club.Members))
	for _, id := range club.Members {
		members = append(members, id.String())
	}
	messages := make([]ClubMessageResponseDTO, 0, len(club.Messages))
	for _, m := range club.Messages {
		messages = append(messages, MessageToDTO(m))
	}
	polls := make([]PollResponseDTO, 0, len(club.Polls))
	for _, p := range club.Polls {
		polls = append(polls, PollToDTO(p))
	}
	predictions := make([]PredictionResponseDTO, 0, len(club.Predictions))
	for _, p := range club.Predictions {
		predictions = append(predictions, PredictionToDTO(p))
	}
	return ClubResponseDTO{
		ID:          club.ID.String(),
		Name:        club.Name,
		Description: club.Description,
		Members:     members,
		Messages:    messages,
		Polls:       polls,
		Predictions: predictions,
		CreatedAt:   club.CreatedAt,
	}
}

// ClubSummaryResponseDTO is the list form, without the message history.
type ClubSummaryResponseDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// List
// @Summary Clubs
// @Tags Clubs
// @Produce json
// @Success 200 {array} ClubSummaryResponseDTO "Clubs"
// @Security SessionToken
// @Router /clubs [get]
func (c *Controller) list(ctx *gin.Context) {
	clubs := http_session_middleware.FromContext(ctx).Clubs()
	resp := make([]ClubSummaryResponseDTO, 0, len(clubs))
	for _, club := range clubs {
		resp = append(resp, ClubSummaryResponseDTO{
			ID:          club.ID.String(),
			Name:        club.Name,
			Description: club.Description,
			MemberCount: len(club.Members),
			CreatedAt:   club.CreatedAt,
		})
	}
	ctx.JSON(http.StatusOK, resp)
}

type CreateClubRequestDTO struct {
	Name        string `json:"name" binding:"required" example:"Severance Sundays"`
	Description string `json:"description"`
}

// Create
// @Summary Create a club
// @Description The creator becomes the first member
// @Tags Clubs
// @Accept json
// @Produce json
// @Param request body CreateClubRequestDTO true "Club"
// @Success 201 {object} ClubResponseDTO "Club"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Security SessionToken
// @Router /clubs [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreateClubRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	club := c.uc.CreateClub(http_session_middleware.FromContext(ctx), req.Name, req.Description)
	ctx.JSON(http.StatusCreated, ClubToDTO(club))
}

// ByID
// @Summary Club by id
// @Tags Clubs
// @Produce json
// @Param club_id path string true "Club id"
// @Success 200 {object} ClubResponseDTO "Club"
// @Failure 404 {object} http_common.ErrorResponse "Unknown club"
// @Security SessionToken
// @Router /clubs/{club_id} [get]
func (c *Controller) byID(ctx *gin.Context) {
	clubID, ok := c.clubID(ctx)
	if !ok {
		return
	}

	club, found := http_session_middleware.FromContext(ctx).Club(clubID)
	if !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "club not found",
		})
		return
	}
	ctx.JSON(http.StatusOK, ClubToDTO(club))
}

// Join
// @Summary Join a club
// @Description Joining twice is a no-op
// @Tags Clubs
// @Produce json
// @Param club_id path string true "Club id"
// @Success 200 {object} ClubResponseDTO "Club"
// @Failure 404 {object} http_common.ErrorResponse "Unknown club"
// @Security SessionToken
// @Router /clubs/{club_id}/join [post]
func (c *Controller) join(ctx *gin.Context) {
	clubID, ok := c.clubID(ctx)
	if !ok {
		return
	}

	sess := http_session_middleware.FromContext(ctx)
	club, found := c.uc.JoinClub(sess, clubID)
	if !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "club not found",
		})
		return
	}

	c.hub.BroadcastToClub(clubID, ws_club.EventMemberJoined, gin.H{
		"user_id": sess.User().ID.String(),
	})
	ctx.JSON(http.StatusOK, ClubToDTO(club))
}

type SendMessageRequestDTO struct {
	Text      string `json:"text" binding:"required"`
	Spoiler   bool   `json:"spoiler"`
	Type      string `json:"type" binding:"omitempty,oneof=movie show"`
	ContentID string `json:"content_id" binding:"omitempty,uuid"`
}

// SendMessage
// @Summary Send a chat message
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path string true "Club id"
// @Param request body SendMessageRequestDTO true "Message"
// @Success 201 {object} ClubMessageResponseDTO "Message"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Failure 404 {object} http_common.ErrorResponse "Unknown club"
// @Security SessionToken
// @Router /clubs/{club_id}/messages [post]
func (c *Controller) sendMessage(ctx *gin.Context) {
	clubID, ok := c.clubID(ctx)
	if !ok {
		return
	}

	var req SendMessageRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	var ref *model.ContentRef
	if req.ContentID != "" && req.Type != "" {
		ref = &model.ContentRef{
			Type: model.ContentType(req.Type),
			ID:   uuid.MustParse(req.ContentID),
		}
	}

	msg, found := c.uc.SendMessage(http_session_middleware.FromContext(ctx), clubID, req.Text, ref, req.Spoiler)
	if !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "club not found",
		})
		return
	}

	c.hub.BroadcastToClub(clubID, ws_club.EventMessageSent, MessageToDTO(msg))
	ctx.JSON(http.StatusCreated, MessageToDTO(msg))
}

type MessageReactionRequestDTO struct {
	Emoji string `json:"emoji" binding:"required" example:"🔥"`
}

// ToggleMessageReaction
// @Summary Toggle a message reaction
// @Description Reacting twice with the same emoji removes the reaction
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path string true "Club id"
// @Param message_id path string true "Message id"
// @Param request body MessageReactionRequestDTO true "Emoji"
// @Success 200 {object} ClubMessageResponseDTO "Updated message"
// @Failure 400 {object} http_common.ErrorResponse "Invalid body or id"
// @Failure 404 {object} http_common.ErrorResponse "Unknown club or message"
// @Security SessionToken
// @Router /clubs/{club_id}/messages/{message_id}/reactions [post]
func (c *Controller) toggleMessageReaction(ctx *gin.Context) {
	clubID, ok := c.clubID(ctx)
	if !ok {
		return
	}
	messageID, err := uuid.Parse(ctx.Param("message_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid message id",
		})
		return
	}

	var req MessageReactionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	msg, found := c.uc.ToggleMessageReaction(http_session_middleware.FromContext(ctx), clubID, messageID, req.Emoji)
	if !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "message not found",
		})
		return
	}

	c.hub.BroadcastToClub(clubID, ws_club.EventReactionUpdated, MessageToDTO(msg))
	ctx.JSON(http.StatusOK, MessageToDTO(msg))
}

type SendPollRequestDTO struct {
	Question string    `json:"question" binding:"required"`
	Options  []string  `json:"options" binding:"required,min=2"`
	ClosesAt time.Time `json:"closes_at" binding:"required"`
}

// SendPoll
// @Summary Post a poll
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path string true "Club id"
// @Param request body SendPollRequestDTO true "Poll"
// @Success 201 {object} PollResponseDTO "Poll"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Failure 404 {object} http_common.ErrorResponse "Unknown club"
// @Security SessionToken
// @Router /clubs/{club_id}/polls [post]
func (c *Controller) sendPoll(ctx *gin.Context) {
	clubID, ok := c.clubID(ctx)
	if !ok {
		return
	}

	var req SendPollRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	poll, found := c.uc.SendPoll(http_session_middleware.FromContext(ctx), clubID, req.Question, req.Options, req.ClosesAt)
	if !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "club not found",
		})
		return
	}

	c.hub.BroadcastToClub(clubID, ws_club.EventPollUpdated, PollToDTO(poll))
	ctx.JSON(http.StatusCreated, PollToDTO(poll))
}

type VotePollRequestDTO struct {
	OptionID string `json:"option_id" binding:"required,uuid"`
}

// VotePoll
// @Summary Vote on a poll
// @Description One vote per member; voting again moves the vote
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path string true "Club id"
// @Param poll_id path string true "Poll id"
// @Param request body VotePollRequestDTO true "Option"
// @Success 200 {object} PollResponseDTO "Updated poll"
// @Failure 400 {object} http_common.ErrorResponse "Invalid body or id"
// @Failure 404 {object} http_common.ErrorResponse "Unknown club or poll"
// @Security SessionToken
// @Router /clubs/{club_id}/polls/{poll_id}/vote [post]
func (c *Controller) votePoll(ctx *gin.Context) {
	clubID, ok := c.clubID(ctx)
	if !ok {
		return
	}
	pollID, err := uuid.Parse(ctx.Param("poll_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid poll id",
		})
		return
	}

	var req VotePollRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	poll, found := c.uc.VotePoll(http_session_middleware.FromContext(ctx), clubID, pollID, uuid.MustParse(req.OptionID))
	if !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "poll not found",
		})
		return
	}

	c.hub.BroadcastToClub(clubID, ws_club.EventPollUpdated, PollToDTO(poll))
	ctx.JSON(http.StatusOK, PollToDTO(poll))
}

type AddPredictionRequestDTO struct {
	Type      string `json:"type" binding:"required,oneof=movie show"`
	ContentID string `json:"content_id" binding:"required,uuid"`
	Text      string `json:"text" binding:"required"`
}

// AddPrediction
// @Summary Make a prediction
// @Description Predictions start as drafts, editable until locked
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path string true "Club id"
// @Param request body AddPredictionRequestDTO true "Prediction"
// @Success 201 {object} PredictionResponseDTO "Prediction"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Failure 404 {object} http_common.ErrorResponse "Unknown club"
// @Security SessionToken
// @Router /clubs/{club_id}/predictions [post]
func (c *Controller) addPrediction(ctx *gin.Context) {
	clubID, ok := c.clubID(ctx)
	if !ok {
		return
	}

	var req AddPredictionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	ref := model.ContentRef{
		Type: model.ContentType(req.Type),
		ID:   uuid.MustParse(req.ContentID),
	}
	p, found := c.uc.AddPrediction(http_session_middleware.FromContext(ctx), clubID, ref, req.Text)
	if !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "club not found",
		})
		return
	}

	c.hub.BroadcastToClub(clubID, ws_club.EventPredictionAdded, PredictionToDTO(p))
	ctx.JSON(http.StatusCreated, PredictionToDTO(p))
}

// LockPrediction
// @Summary Lock a prediction
// @Description A locked prediction can no longer be edited; only drafts lock
// @Tags Clubs
// @Produce json
// @Param club_id path string true "Club id"
// @Param prediction_id path string true "Prediction id"
// @Success 200 {object} PredictionResponseDTO "Locked prediction"
// @Failure 404 {object} http_common.ErrorResponse "Unknown club or prediction"
// @Failure 409 {object} http_common.ErrorResponse "Prediction is not a draft"
// @Security SessionToken
// @Router /clubs/{club_id}/predictions/{prediction_id}/lock [post]
func (c *Controller) lockPrediction(ctx *gin.Context) {
	clubID, predictionID, ok := c.predictionIDs(ctx)
	if !ok {
		return
	}

	p, err := c.uc.LockPrediction(http_session_middleware.FromContext(ctx), clubID, predictionID)
	if !c.respondPrediction(ctx, p, err) {
		return
	}
	c.hub.BroadcastToClub(clubID, ws_club.EventPredictionLocked, PredictionToDTO(p))
}

type RevealPredictionRequestDTO struct {
	Result string `json:"result" binding:"required"`
}

// RevealPrediction
// @Summary Reveal a prediction
// @Description Only locked predictions reveal, and a reveal needs a non-empty outcome
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path string true "Club id"
// @Param prediction_id path string true "Prediction id"
// @Param request body RevealPredictionRequestDTO true "Outcome"
// @Success 200 {object} PredictionResponseDTO "Revealed prediction"
// @Failure 400 {object} http_common.ErrorResponse "Missing outcome"
// @Failure 404 {object} http_common.ErrorResponse "Unknown club or prediction"
// @Failure 409 {object} http_common.ErrorResponse "Prediction is not locked"
// @Security SessionToken
// @Router /clubs/{club_id}/predictions/{prediction_id}/reveal [post]
func (c *Controller) revealPrediction(ctx *gin.Context) {
	clubID, predictionID, ok := c.predictionIDs(ctx)
	if !ok {
		return
	}

	var req RevealPredictionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	p, err := c.uc.RevealPrediction(http_session_middleware.FromContext(ctx), clubID, predictionID, req.Result)
	if !c.respondPrediction(ctx, p, err) {
		return
	}
	c.hub.BroadcastToClub(clubID, ws_club.EventPredictionRevealed, PredictionToDTO(p))
}

type VotePredictionRequestDTO struct {
	Up bool `json:"up"`
}

// VotePrediction
// @Summary Vote on a revealed prediction
// @Description Voting is open only after reveal; voting the other way switches the vote
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path string true "Club id"
// @Param prediction_id path string true "Prediction id"
// @Param request body VotePredictionRequestDTO true "Direction"
// @Success 200 {object} PredictionResponseDTO "Updated prediction"
// @Failure 404 {object} http_common.ErrorResponse "Unknown club or prediction"
// @Failure 409 {object} http_common.ErrorResponse "Prediction not revealed yet"
// @Security SessionToken
// @Router /clubs/{club_id}/predictions/{prediction_id}/vote [post]
func (c *Controller) votePrediction(ctx *gin.Context) {
	clubID, predictionID, ok := c.predictionIDs(ctx)
	if !ok {
		return
	}

	var req VotePredictionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	p, err := c.uc.VotePrediction(http_session_middleware.FromContext(ctx), clubID, predictionID, req.Up)
	if !c.respondPrediction(ctx, p, err) {
		return
	}
	c.hub.BroadcastToClub(clubID, ws_club.EventPredictionVoted, PredictionToDTO(p))
}

func (c *Controller) clubWS(ctx *gin.Context) {
	clubID, ok := c.clubID(ctx)
	if !ok {
		return
	}

	if _, found := http_session_middleware.FromContext(ctx).Club(clubID); !found {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "club not found",
		})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade to websocket",
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	client := &ws_club.Client{
		Hub:    c.hub,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		ClubID: clubID,
	}

	c.hub.RegisterClient(client)

	go c.hub.StartClientReading(client)
	go c.hub.StartClientWriting(client)
}

func (c *Controller) clubID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("club_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid club id",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (c *Controller) predictionIDs(ctx *gin.Context) (clubID, predictionID uuid.UUID, ok bool) {
	clubID, ok = c.clubID(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	predictionID, err := uuid.Parse(ctx.Param("prediction_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid prediction id",
		})
		return uuid.Nil, uuid.Nil, false
	}
	return clubID, predictionID, true
}

// respondPrediction maps a prediction lifecycle result onto a response.
// Returns true when the caller should follow up with a broadcast.
func (c *Controller) respondPrediction(ctx *gin.Context, p model.Prediction, err error) bool {
	if err != nil {
		switch {
		case errors.Is(err, usecase_club.ErrEmptyResult):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: err.Error(),
			})
		case errors.Is(err, usecase_club.ErrPredictionNotDraft),
			errors.Is(err, usecase_club.ErrPredictionNotLocked),
			errors.Is(err, usecase_club.ErrPredictionSealed):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: err.Error(),
			})
		default:
			c.logger.Error("prediction update failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return false
	}
	if p.ID == uuid.Nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "prediction not found",
		})
		return false
	}
	ctx.JSON(http.StatusOK, PredictionToDTO(p))
	return true
}
