package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const genericFailure = "Unable to process the delivery request"

type (
	DeliveryCreator interface {
		Handle(ctx context.Context, cmd commands.CreateDeliveryCommand) (delivery.Aggregate, error)
	}

	DeliveryReader interface {
		Handle(ctx context.Context, q queries.GetDeliveryQuery) (delivery.Aggregate, error)
	}

	DeliveryUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateDeliveryCommand) error
	}

	DeliveryDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteDeliveryCommand) error
	}

	TransitionAuthorizer interface {
		CanTransition(role string, requested delivery.State) bool
	}
)

// Server exposes the delivery orchestrator over HTTP.
type Server struct {
	createHandler DeliveryCreator
	getHandler    DeliveryReader
	updateHandler DeliveryUpdater
	deleteHandler DeliveryDeleter

	authorizer TransitionAuthorizer
	tokens     *TokenIssuer
	logger     *slog.Logger
}

func NewServer(
	createHandler DeliveryCreator,
	getHandler DeliveryReader,
	updateHandler DeliveryUpdater,
	deleteHandler DeliveryDeleter,
	authorizer TransitionAuthorizer,
	tokens *TokenIssuer,
	logger *slog.Logger,
) *Server {
	return &Server{
		createHandler: createHandler,
		getHandler:    getHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		authorizer:    authorizer,
		tokens:        tokens,
		logger:        logger.With("component", "http_server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// Token handles GET /token?role=<role> and returns a signed bearer token.
func (s *Server) Token(c echo.Context) error {
	token, err := s.tokens.Issue(c.QueryParam("role"))
	if err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	return c.String(http.StatusOK, token)
}

// CreateDelivery handles POST /deliveries.
func (s *Server) CreateDelivery(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Failed("Invalid request body"))
	}

	recipientID, err := parseID("recipientId", req.RecipientID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Failed(err.Error()))
	}

	cmd, err := commands.NewCreateDeliveryCommand(req.SenderName, recipientID, req.State)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Failed(err.Error()))
	}

	created, err := s.createHandler.Handle(ctx, cmd)
	if err != nil {
		s.logger.ErrorContext(ctx, "Unable to create delivery", "error", err)
		return c.JSON(http.StatusBadRequest, Failed(clientMessage(err)))
	}

	c.Response().Header().Set(echo.HeaderLocation, "/deliveries/"+created.ID.String())
	return c.JSON(http.StatusCreated, Succeeded(toDeliveryResponse(created)))
}

// GetDelivery handles GET /deliveries/:id.
func (s *Server) GetDelivery(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, Failed(err.Error()))
	}

	found, err := s.get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Unable to retrieve delivery", "deliveryId", c.Param("id"), "error", err)
		return c.JSON(http.StatusNotFound, Failed(clientMessage(err)))
	}
	return c.JSON(http.StatusOK, Succeeded(toDeliveryResponse(found)))
}

// UpdateDelivery handles PATCH /deliveries. The body is validated first; only
// a well-formed request is checked against the caller's role.
func (s *Server) UpdateDelivery(c echo.Context) error {
	ctx := c.Request().Context()

	var req UpdateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Failed("Invalid request body"))
	}

	id, err := parseID("id", req.ID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Failed(err.Error()))
	}
	if req.State == nil {
		return c.JSON(http.StatusBadRequest, Failed(errs.NewValueIsRequiredError("state").Error()))
	}
	state := *req.State

	role := RoleFrom(c)
	if !s.authorizer.CanTransition(role, state) {
		s.logger.WarnContext(ctx, "Transition is not allowed for role",
			"role", role, "deliveryId", req.ID, "state", state.String())
		return c.JSON(http.StatusForbidden, Failed("Transition is not allowed for this role"))
	}

	cmd, err := commands.NewUpdateDeliveryCommand(id, state)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Failed(err.Error()))
	}

	if err = s.updateHandler.Handle(ctx, cmd); err != nil {
		s.logger.ErrorContext(ctx, "Unable to transition delivery", "deliveryId", req.ID, "error", err)
		return c.JSON(http.StatusBadRequest, Failed(clientMessage(err)))
	}

	updated, err := s.get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Unable to retrieve delivery", "deliveryId", req.ID, "error", err)
		return c.JSON(http.StatusBadRequest, Failed(clientMessage(err)))
	}
	return c.JSON(http.StatusOK, Succeeded(toDeliveryResponse(updated)))
}

// DeleteDelivery handles DELETE /deliveries/:id.
func (s *Server) DeleteDelivery(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Failed(err.Error()))
	}

	cmd, err := commands.NewDeleteDeliveryCommand(id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Failed(err.Error()))
	}

	if err = s.deleteHandler.Handle(ctx, cmd); err != nil {
		s.logger.ErrorContext(ctx, "Unable to delete delivery", "deliveryId", id.String(), "error", err)
		return c.NoContent(http.StatusInternalServerError)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) get(ctx context.Context, id kernel.UUID) (delivery.Aggregate, error) {
	q, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return delivery.Aggregate{}, err
	}
	return s.getHandler.Handle(ctx, q)
}

func parseID(name, raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// pathID binds the :id segment as a simple-style path parameter.
func pathID(c echo.Context) (kernel.UUID, error) {
	var id kernel.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// clientMessage hides anything that is neither a delivery error nor a
// validation error.
func clientMessage(err error) string {
	var deliveryErr *delivery.Error
	if errors.As(err, &deliveryErr) || errs.IsValidation(err) {
		return err.Error()
	}
	return genericFailure
}
