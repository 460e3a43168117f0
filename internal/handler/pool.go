package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"

	"github.com/mem-vault/mem-coin/internal/registry"
	"github.com/mem-vault/mem-coin/internal/service"
	"github.com/mem-vault/mem-coin/pkg/amm"
)

type PoolHandler struct {
	BaseHandler
	service *service.PoolService
}

func NewPoolHandler(logger *slog.Logger, svc *service.PoolService) *PoolHandler {
	return &PoolHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type CreatePoolRequest struct {
	AmountA string `json:"amount_a"`
	AmountB string `json:"amount_b"`
}

type SeedPoolRequest struct {
	Pair string `json:"pair"`
}

type QuoteRequest struct {
	Side   string `query:"side"`
	Amount string `query:"amount"`
}

type SwapRequest struct {
	Side     string `json:"side"`
	AmountIn string `json:"amount_in"`
	MinOut   string `json:"min_out"`
}

type SwapResponse struct {
	AmountOut string `json:"amount_out"`
	AdminFee  string `json:"admin_fee"`
	TotalFee  string `json:"total_fee"`
}

type FundRequest struct {
	AmountA string `json:"amount_a"`
	AmountB string `json:"amount_b"`
}

type WithdrawRequest struct {
	Side   string `json:"side"`
	Amount string `json:"amount"`
}

type WithdrawResponse struct {
	Withdrawn string `json:"withdrawn"`
}

func (h *PoolHandler) Create() fiber.Handler {
	return func(c fiber.Ctx) error {
		caller, err := parseCaller(c)
		if err != nil {
			return err
		}
		var req CreatePoolRequest
		if err := h.bindJSON(c, &req); err != nil {
			return err
		}
		a, err := parseAmount(req.AmountA, true)
		if err != nil {
			return err
		}
		b, err := parseAmount(req.AmountB, true)
		if err != nil {
			return err
		}

		p, err := h.service.CreatePool(context.Background(), caller, a, b)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(newPoolView(p.Snapshot()))
	}
}

func (h *PoolHandler) Seed() fiber.Handler {
	return func(c fiber.Ctx) error {
		caller, err := parseCaller(c)
		if err != nil {
			return err
		}
		var req SeedPoolRequest
		if err := h.bindJSON(c, &req); err != nil {
			return err
		}
		if !common.IsHexAddress(req.Pair) {
			return ErrInvalidPairAddress
		}

		p, err := h.service.SeedPool(c.Context(), caller, common.HexToAddress(req.Pair))
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(newPoolView(p.Snapshot()))
	}
}

func (h *PoolHandler) List() fiber.Handler {
	return func(c fiber.Ctx) error {
		pools := h.service.Pools()
		views := make([]PoolView, 0, len(pools))
		for _, p := range pools {
			views = append(views, newPoolView(p.Snapshot()))
		}
		return c.JSON(views)
	}
}

func (h *PoolHandler) Get() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := parsePoolID(c)
		if err != nil {
			return err
		}
		p, err := h.service.Pool(id)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(newPoolView(p.Snapshot()))
	}
}

func (h *PoolHandler) Quote() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := parsePoolID(c)
		if err != nil {
			return err
		}
		var req QuoteRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}
		side, err := parseSide(req.Side)
		if err != nil {
			return err
		}
		amount, err := parseAmount(req.Amount, false)
		if err != nil {
			return err
		}

		q, err := h.service.Quote(context.Background(), id, side, amount)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(newQuoteView(q))
	}
}

func (h *PoolHandler) Swap() fiber.Handler {
	return func(c fiber.Ctx) error {
		caller, err := parseCaller(c)
		if err != nil {
			return err
		}
		id, err := parsePoolID(c)
		if err != nil {
			return err
		}
		var req SwapRequest
		if err := h.bindJSON(c, &req); err != nil {
			return err
		}
		side, err := parseSide(req.Side)
		if err != nil {
			return err
		}
		amountIn, err := parseAmount(req.AmountIn, false)
		if err != nil {
			return err
		}
		minOut, err := parseAmount(req.MinOut, true)
		if err != nil {
			return err
		}

		q, err := h.service.Swap(context.Background(), caller, id, side, amountIn, minOut)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(SwapResponse{
			AmountOut: formatAmount(q.Output),
			AdminFee:  formatAmount(q.AdminFee),
			TotalFee:  formatAmount(q.TotalFee),
		})
	}
}

func (h *PoolHandler) Fund() fiber.Handler {
	return func(c fiber.Ctx) error {
		caller, err := parseCaller(c)
		if err != nil {
			return err
		}
		id, err := parsePoolID(c)
		if err != nil {
			return err
		}
		var req FundRequest
		if err := h.bindJSON(c, &req); err != nil {
			return err
		}
		a, err := parseAmount(req.AmountA, true)
		if err != nil {
			return err
		}
		b, err := parseAmount(req.AmountB, true)
		if err != nil {
			return err
		}

		if err := h.service.Fund(context.Background(), caller, id, a, b); err != nil {
			return h.handleServiceError(err)
		}
		p, err := h.service.Pool(id)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(newPoolView(p.Snapshot()))
	}
}

func (h *PoolHandler) Withdraw() fiber.Handler {
	return func(c fiber.Ctx) error {
		caller, err := parseCaller(c)
		if err != nil {
			return err
		}
		id, err := parsePoolID(c)
		if err != nil {
			return err
		}
		var req WithdrawRequest
		if err := h.bindJSON(c, &req); err != nil {
			return err
		}
		side, err := parseSide(req.Side)
		if err != nil {
			return err
		}
		amount, err := parseAmount(req.Amount, false)
		if err != nil {
			return err
		}

		got, err := h.service.WithdrawAdminFee(context.Background(), caller, id, side, amount)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(WithdrawResponse{Withdrawn: formatAmount(got)})
	}
}

func (h *PoolHandler) bindJSON(c fiber.Ctx, out any) error {
	if err := c.Bind().JSON(out); err != nil {
		h.logger.Debug("failed to bind body", "err", err)
		return ErrInvalidBody
	}
	return nil
}

func (h *PoolHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, amm.ErrZeroAmount):
		return ErrZeroAmountBadRequest
	case errors.Is(err, amm.ErrReservesEmpty):
		return ErrEmptyReservesBadRequest
	case errors.Is(err, amm.ErrInvalidSide):
		return ErrInvalidSideBadRequest
	case errors.Is(err, amm.ErrSlippageExceeded):
		return ErrSlippageConflict
	case errors.Is(err, amm.ErrUnauthorized):
		return ErrUnauthorizedForbidden
	case errors.Is(err, amm.ErrInsufficientFeeBalance):
		return ErrInsufficientFeeBalanceUnprocessable
	case errors.Is(err, amm.ErrPoolUnderflow):
		return ErrPoolUnderflowUnprocessable
	case errors.Is(err, amm.ErrReserveOverflow):
		return ErrReserveOverflowUnprocessable
	case errors.Is(err, registry.ErrPoolNotFound):
		return ErrPoolNotFound
	case errors.Is(err, service.ErrSeedingDisabled):
		return ErrSeedingUnavailable
	case errors.Is(err, service.ErrReserveTooLarge):
		return ErrPairReserveTooLarge
	case errors.Is(err, service.ErrZeroPairAddress):
		return ErrInvalidPairAddress
	default:
		h.logger.Error("pool operation failed", "err", err)
		return ErrInternal
	}
}
