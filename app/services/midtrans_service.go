package services

import (
	"context"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var minorUnits = decimal.NewFromInt(100)

// MidtransGateway requests Snap payment pages. Amounts are sent in minor
// units of the store currency.
type MidtransGateway struct {
	client snap.Client
}

func NewMidtransGateway(client snap.Client) *MidtransGateway {
	return &MidtransGateway{client: client}
}

func (g *MidtransGateway) CreatePayment(_ context.Context, req PaymentRequest) (*PaymentResult, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderCode,
			GrossAmt: ToMinorUnits(req.Amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.Customer.Name,
			Email: req.Customer.Email,
		},
	}

	resp, mErr := g.client.CreateTransaction(snapReq)
	if mErr != nil {
		return nil, errors.Errorf("midtrans: %s", mErr.Error())
	}
	return &PaymentResult{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnits).Round(0).IntPart()
}
