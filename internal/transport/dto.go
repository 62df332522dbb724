package transport

import "github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"

type balanceResponse struct {
	Address      string `json:"address"`
	Balance      uint64 `json:"balance"`
	Confirmed    uint64 `json:"confirmed"`
	PendingSpent uint64 `json:"pendingSpent"`
	Unconfirmed  uint64 `json:"unconfirmed"`
}

type spendResponse struct {
	Spent       bool   `json:"spent"`
	BlockHash   string `json:"blockHash,omitempty"`
	TxHash      string `json:"txHash,omitempty"`
	Unconfirmed bool   `json:"unconfirmed,omitempty"`
}

type txoResponse struct {
	TxHash      string         `json:"txHash"`
	OutputIndex uint32         `json:"vout"`
	Height      uint64         `json:"height,omitempty"`
	Value       uint64         `json:"value"`
	Unconfirmed bool           `json:"unconfirmed,omitempty"`
	Spend       *spendResponse `json:"spend,omitempty"`
}

type blockResponse struct {
	Height     uint64 `json:"height"`
	Hash       string `json:"hash"`
	PrevHash   string `json:"previousBlockHash"`
	MerkleRoot string `json:"merkleRoot"`
	Version    uint32 `json:"version"`
	Time       uint32 `json:"time"`
	Bits       uint32 `json:"bits"`
	Nonce      uint32 `json:"nonce"`
	Size       uint32 `json:"size"`
	TxCount    uint32 `json:"txCount"`
}

type txBlockResponse struct {
	BlockHash string `json:"blockHash"`
	Height    uint64 `json:"height"`
}

type sendResponse struct {
	TxHash string `json:"txHash"`
}

type healthResponse struct {
	Status        string  `json:"status"`
	IndexedHeight *uint64 `json:"indexedHeight,omitempty"`
	NodeHeight    *int64  `json:"nodeHeight,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toSpendResponse(spend *model.Spend) spendResponse {
	if spend == nil {
		return spendResponse{}
	}
	return spendResponse{
		Spent:       true,
		BlockHash:   spend.BlockHash,
		TxHash:      spend.TxHash,
		Unconfirmed: spend.Unconfirmed,
	}
}

func toTxoResponse(txo model.AddressTxo) txoResponse {
	resp := txoResponse{
		TxHash:      txo.TxHash,
		OutputIndex: txo.OutputIndex,
		Height:      txo.Height,
		Value:       txo.Value,
		Unconfirmed: txo.Unconfirmed,
	}
	if txo.Spend != nil {
		spend := toSpendResponse(txo.Spend)
		resp.Spend = &spend
	}
	return resp
}

func toBlockResponse(info model.BlockInfo) blockResponse {
	return blockResponse{
		Height:     info.Height,
		Hash:       info.Hash,
		PrevHash:   info.PrevHash,
		MerkleRoot: info.MerkleRoot,
		Version:    info.Version,
		Time:       info.Time,
		Bits:       info.Bits,
		Nonce:      info.Nonce,
		Size:       info.ByteSize,
		TxCount:    info.TxCount,
	}
}
