// Package payment wraps the external payment gateway. The core only cares
// about success or failure; gateway internals are never inspected.
package payment

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Charge carries the computed total in minor currency units plus static
// merchant metadata, mirroring what the checkout screen sends the gateway.
type Charge struct {
	OrderID       string
	AmountMinor   int64 // e.g. paise: total * 100
	Currency      string
	Description   string
	CustomerName  string
	CustomerEmail string
}

type Gateway interface {
	// Charge processes a payment and returns the gateway transaction
	// reference.
	Charge(ctx context.Context, charge Charge) (string, error)
}

// simulatedGateway approves every charge. Stands in for a real gateway
// integration until one is wired up.
type simulatedGateway struct {
	log *zap.Logger
}

func NewSimulatedGateway(log *zap.Logger) Gateway {
	return &simulatedGateway{
		log: log.With(zap.String("service", "payment")),
	}
}

func (g *simulatedGateway) Charge(ctx context.Context, charge Charge) (string, error) {
	txnID := "txn_" + uuid.NewString()

	g.log.Info("Payment charged",
		zap.String("order_id", charge.OrderID),
		zap.Int64("amount_minor", charge.AmountMinor),
		zap.String("currency", charge.Currency),
		zap.String("transaction_id", txnID),
	)

	return txnID, nil
}
