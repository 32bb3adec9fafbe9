package http

import (
	"context"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type orderCommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) (*order.Order, error)
}

type complaintHandler interface {
	HandleRaise(ctx context.Context, cmd commands.RaiseComplaintCommand) (*order.Order, error)
	HandleResolve(ctx context.Context, cmd commands.ResolveComplaintCommand) (*order.Order, error)
}

type claimJobHandler interface {
	Handle(ctx context.Context, cmd commands.ClaimJobCommand) (*job.Job, error)
}

type createEmployeeHandler interface {
	Handle(ctx context.Context, cmd commands.CreateEmployeeCommand) (*staff.Employee, error)
}

type createItemTypeHandler interface {
	Handle(ctx context.Context, cmd commands.CreateLaundryItemTypeCommand) (*catalog.ItemType, error)
}

type getOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error)
}

type listOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) (*queries.ListOrdersQueryResponse, error)
}

type listOutletJobsHandler interface {
	Handle(ctx context.Context, query queries.ListOutletJobsQuery) ([]queries.JobView, error)
}

// Handlers groups the use cases the HTTP adapter drives.
type Handlers struct {
	CreateOrder    orderCommandHandler[commands.CreateOrderCommand]
	AssignItems    orderCommandHandler[commands.AssignItemsCommand]
	AdvanceStage   orderCommandHandler[commands.AdvanceStageCommand]
	MarkOrderPaid  orderCommandHandler[commands.MarkOrderPaidCommand]
	Complaints     complaintHandler
	ClaimJob       claimJobHandler
	CreateEmployee createEmployeeHandler
	CreateItemType createItemTypeHandler

	GetOrder       getOrderHandler
	ListOrders     listOrdersHandler
	ListOutletJobs listOutletJobsHandler
}

// Server translates HTTP requests into commands and queries and maps their
// results and error kinds back onto HTTP.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With(zap.String("component", "http")),
	}
}

// Register mounts the API, the health probe and the Swagger UI on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "OK")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/items", s.AssignItems)
	api.POST("/orders/:orderId/stage", s.AdvanceStage)
	api.POST("/orders/:orderId/payment", s.MarkOrderPaid)
	api.POST("/orders/:orderId/complaints", s.RaiseComplaint)
	api.POST("/orders/:orderId/complaints/resolve", s.ResolveComplaint)
	api.GET("/outlets/:outletId/jobs", s.ListOutletJobs)
	api.POST("/jobs/:jobId/claim", s.ClaimJob)
	api.POST("/employees", s.CreateEmployee)
	api.POST("/item-types", s.CreateLaundryItemType)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid", "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.OrderID != nil {
		if orderID, err = toKernelUUID(*body.OrderID); err != nil {
			return s.fail(ctx, err)
		}
	}
	outletID, err := toKernelUUID(body.OutletID)
	if err != nil {
		return s.fail(ctx, err)
	}
	customerID, err := toKernelUUID(body.CustomerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, outletID, customerID, actor)
	if err != nil {
		return s.reject(ctx, err)
	}
	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, orderFromDomain(o))
}

// AssignItems handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AssignItems(ctx echo.Context) error {
	orderID, actor, err := s.orderRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body AssignItemsRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid", "Invalid request body")
	}

	inputs := make([]commands.ItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		itemTypeID, convErr := toKernelUUID(item.ItemTypeID)
		if convErr != nil {
			return s.fail(ctx, convErr)
		}
		inputs = append(inputs, commands.ItemInput{
			ItemTypeID: itemTypeID,
			Weight:     item.WeightKg,
			Quantity:   item.Quantity,
		})
	}

	cmd, err := commands.NewAssignItemsCommand(orderID, inputs, actor)
	if err != nil {
		return s.reject(ctx, err)
	}
	o, err := s.handlers.AssignItems.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// AdvanceStage handles POST /api/v1/orders/{orderId}/stage.
func (s *Server) AdvanceStage(ctx echo.Context) error {
	orderID, actor, err := s.orderRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body AdvanceStageRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid", "Invalid request body")
	}
	next, err := order.ParseStage(body.Stage)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceStageCommand(orderID, next, actor)
	if err != nil {
		return s.reject(ctx, err)
	}
	o, err := s.handlers.AdvanceStage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// MarkOrderPaid handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, actor, err := s.orderRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, actor)
	if err != nil {
		return s.reject(ctx, err)
	}
	o, err := s.handlers.MarkOrderPaid.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// RaiseComplaint handles POST /api/v1/orders/{orderId}/complaints.
func (s *Server) RaiseComplaint(ctx echo.Context) error {
	orderID, actor, err := s.orderRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body RaiseComplaintRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid", "Invalid request body")
	}

	cmd, err := commands.NewRaiseComplaintCommand(orderID, body.Description, actor)
	if err != nil {
		return s.reject(ctx, err)
	}
	o, err := s.handlers.Complaints.HandleRaise(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// ResolveComplaint handles POST /api/v1/orders/{orderId}/complaints/resolve.
func (s *Server) ResolveComplaint(ctx echo.Context) error {
	orderID, actor, err := s.orderRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body ResolveComplaintRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid", "Invalid request body")
	}

	cmd, err := commands.NewResolveComplaintCommand(orderID, body.Resolution, actor)
	if err != nil {
		return s.reject(ctx, err)
	}
	o, err := s.handlers.Complaints.HandleResolve(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// ClaimJob handles POST /api/v1/jobs/{jobId}/claim.
func (s *Server) ClaimJob(ctx echo.Context) error {
	jobID, err := pathUUID(ctx, "jobId")
	if err != nil {
		return s.fail(ctx, err)
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewClaimJobCommand(jobID, actor)
	if err != nil {
		return s.reject(ctx, err)
	}
	j, err := s.handlers.ClaimJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobFromDomain(j))
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewEmployee
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid", "Invalid request body")
	}

	employeeID := kernel.NewUUID()
	if body.EmployeeID != nil {
		if employeeID, err = toKernelUUID(*body.EmployeeID); err != nil {
			return s.fail(ctx, err)
		}
	}
	var outletID *kernel.UUID
	if body.OutletID != nil {
		id, convErr := toKernelUUID(*body.OutletID)
		if convErr != nil {
			return s.fail(ctx, convErr)
		}
		outletID = &id
	}
	role, err := staff.ParseRole(body.Role)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateEmployeeCommand(employeeID, outletID, body.Name, role, body.ShiftStart, body.ShiftEnd, actor)
	if err != nil {
		return s.reject(ctx, err)
	}
	employee, err := s.handlers.CreateEmployee.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, employeeFromDomain(employee))
}

// CreateLaundryItemType handles POST /api/v1/item-types.
func (s *Server) CreateLaundryItemType(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewItemType
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid", "Invalid request body")
	}

	cmd, err := commands.NewCreateLaundryItemTypeCommand(kernel.NewUUID(), body.Name, actor)
	if err != nil {
		return s.reject(ctx, err)
	}
	itemType, err := s.handlers.CreateItemType.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, itemTypeFromDomain(itemType))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.reject(ctx, err)
	}
	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderDetailsFromView(view))
}

type listOrdersParams struct {
	OutletID   *openapi_types.UUID
	CustomerID *openapi_types.UUID
	Stage      *[]string
	SortBy     *string
	Direction  *string
	Limit      *int
	Offset     *int
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	var params listOrdersParams
	values := ctx.QueryParams()
	for name, dest := range map[string]any{
		"outlet_id":   &params.OutletID,
		"customer_id": &params.CustomerID,
		"stage":       &params.Stage,
		"sort_by":     &params.SortBy,
		"direction":   &params.Direction,
		"limit":       &params.Limit,
		"offset":      &params.Offset,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, values, dest); err != nil {
			return writeError(ctx, http.StatusBadRequest, "Invalid", "Invalid format for parameter "+name+": "+err.Error())
		}
	}

	outletID, err := optionalKernelUUID(params.OutletID)
	if err != nil {
		return s.fail(ctx, err)
	}
	customerID, err := optionalKernelUUID(params.CustomerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	var stages []order.Stage
	if params.Stage != nil {
		for _, raw := range *params.Stage {
			stage, parseErr := order.ParseStage(raw)
			if parseErr != nil {
				return s.fail(ctx, parseErr)
			}
			stages = append(stages, stage)
		}
	}

	query, err := queries.NewListOrdersQuery(
		outletID,
		customerID,
		stages,
		valueOr(params.SortBy, ""),
		queries.SortDirection(valueOr(params.Direction, "")),
		valueOr(params.Limit, 0),
		valueOr(params.Offset, 0),
	)
	if err != nil {
		return s.reject(ctx, err)
	}
	page, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := OrderPage{Total: page.Total, Orders: make([]Order, 0, len(page.Orders))}
	for _, summary := range page.Orders {
		response.Orders = append(response.Orders, orderFromSummary(summary))
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListOutletJobs handles GET /api/v1/outlets/{outletId}/jobs.
func (s *Server) ListOutletJobs(ctx echo.Context) error {
	outletID, err := pathUUID(ctx, "outletId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var (
		rawType    *string
		unassigned *bool
	)
	values := ctx.QueryParams()
	if err = runtime.BindQueryParameter("form", true, false, "type", values, &rawType); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid", "Invalid format for parameter type: "+err.Error())
	}
	if err = runtime.BindQueryParameter("form", true, false, "unassigned", values, &unassigned); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid", "Invalid format for parameter unassigned: "+err.Error())
	}

	var jobType *job.Type
	if rawType != nil {
		t, parseErr := job.ParseType(*rawType)
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		jobType = &t
	}

	query, err := queries.NewListOutletJobsQuery(outletID, jobType, valueOr(unassigned, false))
	if err != nil {
		return s.reject(ctx, err)
	}
	views, err := s.handlers.ListOutletJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobsFromViews(views))
}

func (s *Server) orderRequest(ctx echo.Context) (kernel.UUID, staff.Actor, error) {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return kernel.UUID{}, staff.Actor{}, err
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return kernel.UUID{}, staff.Actor{}, err
	}
	return orderID, actor, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return toKernelUUID(id)
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalKernelUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := toKernelUUID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
