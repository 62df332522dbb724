package model

type Coin string
type Network string

var (
	BTC Coin = "BTC"
	LTC Coin = "LTC"
	VTC Coin = "VTC"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)
