package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"tally.com/internal/application/usecase"
	"tally.com/internal/domain/entity"
	"tally.com/internal/infrastructure/logger"
	"tally.com/internal/infrastructure/validator"
)

const (
	storeLabel  = "store"
	basketLabel = "basket"
)

// Options controls the console wording
type Options struct {
	StopWord     string
	StoreHeader  string
	BasketHeader string
}

// Handler runs the interactive warehouse and basket session
type Handler struct {
	fillWarehouseUseCase *usecase.FillWarehouseUseCase
	transferUseCase      *usecase.TransferUseCase
	getContentsUseCase   *usecase.GetContentsUseCase
	options              Options
	logger               logger.Logger
}

// NewHandler creates a new console handler
func NewHandler(
	fillWarehouseUseCase *usecase.FillWarehouseUseCase,
	transferUseCase *usecase.TransferUseCase,
	getContentsUseCase *usecase.GetContentsUseCase,
	options Options,
	logger logger.Logger,
) *Handler {
	return &Handler{
		fillWarehouseUseCase: fillWarehouseUseCase,
		transferUseCase:      transferUseCase,
		getContentsUseCase:   getContentsUseCase,
		options:              options,
		logger:               logger,
	}
}

// session is the state of one Run call
type session struct {
	tokens *bufio.Scanner
	out    io.Writer
}

func (s *session) next() (string, bool) {
	if !s.tokens.Scan() {
		return "", false
	}
	return s.tokens.Text(), true
}

func (s *session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// Run reads whitespace separated tokens from in until the stop word or end
// of input, writing prompts, contents and errors to out. Only a read failure
// is returned; every ledger error is reported on out and the loop continues.
func (h *Handler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	tokens := bufio.NewScanner(in)
	tokens.Split(bufio.ScanWords)
	s := &session{tokens: tokens, out: out}

	h.logger.LogInfo(ctx, "Session started")

	h.fillWarehouse(ctx, s)
	h.writeHoldings(s, h.options.StoreHeader, h.getContentsUseCase.Execute(ctx).Store)

	h.transact(ctx, s)
	h.writeContents(ctx, s)

	if err := tokens.Err(); err != nil {
		h.logger.LogError(ctx, "Failed to read input", err)
		return fmt.Errorf("failed to read input: %w", err)
	}

	h.logger.LogInfo(ctx, "Session finished")
	return nil
}

func (h *Handler) fillWarehouse(ctx context.Context, s *session) {
	s.printf("Warehouse filling.\n")
	for {
		s.printf("Input code (%q to stop): ", h.options.StopWord)
		code, ok := s.next()
		if !ok || code == h.options.StopWord {
			return
		}

		s.printf("Input quantity: ")
		token, ok := s.next()
		if !ok {
			return
		}

		quantity, err := validator.ParseQuantity(token)
		if err == nil {
			err = h.fillWarehouseUseCase.Execute(ctx, entity.Movement{Code: code, Quantity: quantity})
		}
		if err != nil {
			if errors.Is(err, entity.ErrInvalidArgument) {
				s.printf("%s\n", err)
				continue
			}
			h.reportError(ctx, s, storeLabel, err)
		}
	}
}

func (h *Handler) transact(ctx context.Context, s *session) {
	for {
		s.printf("Input command (add, remove or %s), code and quantity: ", h.options.StopWord)
		command, ok := s.next()
		if !ok || command == h.options.StopWord {
			return
		}
		code, ok := s.next()
		if !ok {
			return
		}
		token, ok := s.next()
		if !ok {
			return
		}

		if err := h.transfer(ctx, command, code, token); err != nil {
			h.reportError(ctx, s, labelFor(command), err)
		}

		h.writeContents(ctx, s)
	}
}

// transfer checks the command before parsing the quantity so an unknown
// command is always reported as such
func (h *Handler) transfer(ctx context.Context, command, code, token string) error {
	if !usecase.IsTransferCommand(command) {
		return entity.UnknownCommand(command)
	}

	quantity, err := validator.ParseQuantity(token)
	if err != nil {
		return err
	}

	return h.transferUseCase.Execute(ctx, usecase.TransferRequest{
		Command:  command,
		Movement: entity.Movement{Code: code, Quantity: quantity},
	})
}

// labelFor names the side an error came from
func labelFor(command string) string {
	if command == usecase.CommandRemove {
		return basketLabel
	}
	return storeLabel
}

func (h *Handler) reportError(ctx context.Context, s *session, label string, err error) {
	switch {
	case errors.Is(err, entity.ErrUnknownCommand):
		s.printf("%s\n", err)
	case errors.Is(err, entity.ErrInvalidArgument),
		errors.Is(err, entity.ErrUnknownCode),
		errors.Is(err, entity.ErrInsufficientStock):
		s.printf("%s: %s\n", label, err)
	default:
		h.logger.LogError(ctx, "Unexpected error", err, "label", label)
		s.printf("%s: unexpected error: %s\n", label, err)
	}
}

func (h *Handler) writeContents(ctx context.Context, s *session) {
	contents := h.getContentsUseCase.Execute(ctx)
	h.writeHoldings(s, h.options.BasketHeader, contents.Basket)
	h.writeHoldings(s, h.options.StoreHeader, contents.Store)
}

func (h *Handler) writeHoldings(s *session, header string, holdings []entity.Holding) {
	s.printf("%s\n", header)
	for _, holding := range holdings {
		s.printf("[%s] = %d;\n", holding.Code, holding.Quantity)
	}
}
