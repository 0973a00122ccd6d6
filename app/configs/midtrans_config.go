package configs

import (
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

func NewMidtransClient(env ENV) snap.Client {
	var client snap.Client

	environment := midtrans.Sandbox
	if env.IsProduction() {
		environment = midtrans.Production
	}
	client.New(env.MidtransServerKey, environment)
	return client
}
