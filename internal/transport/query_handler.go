// Package transport exposes the index over HTTP.
package transport

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/hashing"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/query"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const maxRawTransactionBody = 4 << 20

var errBadRequest = errors.New("bad request")

// QueryHandler serves address, outpoint and block lookups.
type QueryHandler struct {
	logger *zap.Logger
	query  QueryService
	node   Node
}

// NewQueryHandler returns a QueryHandler instance.
func NewQueryHandler(queries QueryService, node Node, logger *zap.Logger) (*QueryHandler, error) {
	if queries == nil {
		return nil, errors.New("query service is required")
	}
	if node == nil {
		return nil, errors.New("node client is required")
	}
	return &QueryHandler{
		logger: logger.Named("queryHandler"),
		query:  queries,
		node:   node,
	}, nil
}

// Handler returns the routes wrapped with permissive CORS.
func (h *QueryHandler) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /addressBalance/{address}", h.addressBalance)
	mux.HandleFunc("GET /addressTxos/{address}", h.addressTxos)
	mux.HandleFunc("GET /outpointSpend/{txid}/{vout}", h.outpointSpend)
	mux.HandleFunc("GET /blocks/{height}", h.blockByHeight)
	mux.HandleFunc("GET /transactions/{txid}/block", h.transactionBlock)
	mux.HandleFunc("POST /sendRawTransaction", h.sendRawTransaction)
	mux.HandleFunc("GET /health", h.health)
	return cors.Default().Handler(mux)
}

func (h *QueryHandler) addressBalance(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	balance, err := h.query.Balance(address)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, balanceResponse{
		Address:      address,
		Balance:      balance.Spendable(includeUnconfirmed(r)),
		Confirmed:    balance.Confirmed,
		PendingSpent: balance.PendingSpent,
		Unconfirmed:  balance.Unconfirmed,
	})
}

func (h *QueryHandler) addressTxos(w http.ResponseWriter, r *http.Request) {
	txos, err := h.query.AddressTxos(r.PathValue("address"), includeUnconfirmed(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp := make([]txoResponse, 0, len(txos))
	for _, txo := range txos {
		resp = append(resp, toTxoResponse(txo))
	}
	h.respond(w, http.StatusOK, resp)
}

func (h *QueryHandler) outpointSpend(w http.ResponseWriter, r *http.Request) {
	txid, err := txHash(r.PathValue("txid"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	vout, err := strconv.ParseUint(r.PathValue("vout"), 10, 32)
	if err != nil {
		h.fail(w, r, badRequest(err))
		return
	}
	spend, err := h.query.OutpointSpend(txid, uint32(vout))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toSpendResponse(spend))
}

func (h *QueryHandler) blockByHeight(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseUint(r.PathValue("height"), 10, 64)
	if err != nil {
		h.fail(w, r, badRequest(err))
		return
	}
	info, err := h.query.BlockByHeight(height)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toBlockResponse(info))
}

func (h *QueryHandler) transactionBlock(w http.ResponseWriter, r *http.Request) {
	txid, err := txHash(r.PathValue("txid"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	blockHash, height, err := h.query.TransactionBlock(txid)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, txBlockResponse{BlockHash: blockHash, Height: height})
}

func (h *QueryHandler) sendRawTransaction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRawTransactionBody))
	if err != nil {
		h.fail(w, r, badRequest(err))
		return
	}
	raw, err := hex.DecodeString(strings.TrimSpace(string(body)))
	if err != nil {
		h.fail(w, r, badRequest(err))
		return
	}
	var tx wire.MsgTx
	if err = tx.Deserialize(bytes.NewReader(raw)); err != nil {
		h.fail(w, r, badRequest(err))
		return
	}
	hash, err := h.node.SendRawTransaction(&tx, false)
	if err != nil {
		h.logger.Warn("node rejected transaction", zap.String("tx", tx.TxHash().String()), zap.Error(err))
		h.respond(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	h.respond(w, http.StatusOK, sendResponse{TxHash: hash.String()})
}

func (h *QueryHandler) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	height, ok, err := h.query.HighestBlock()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if ok {
		resp.IndexedHeight = &height
	}
	if count, err := h.node.GetBlockCount(); err == nil {
		resp.NodeHeight = &count
	} else {
		resp.Status = "degraded"
		h.logger.Debug("node unavailable", zap.Error(err))
	}
	h.respond(w, http.StatusOK, resp)
}

func (h *QueryHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errBadRequest):
		h.respond(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, query.ErrNotFound):
		h.respond(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("query failed", zap.String("path", r.URL.Path), zap.Error(err))
		h.respond(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (h *QueryHandler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Debug("write response failed", zap.Error(err))
	}
}

func badRequest(err error) error {
	return fmt.Errorf("%w: %v", errBadRequest, err)
}

func includeUnconfirmed(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("unconfirmed"))
	return err == nil && v
}

// txHash validates a reverse-hex transaction hash from a path.
func txHash(s string) (string, error) {
	s = strings.ToLower(s)
	raw, err := hashing.FromReverseHex(s)
	if err != nil || len(raw) != 32 {
		return "", fmt.Errorf("%w: txid must be 64 hex characters", errBadRequest)
	}
	return s, nil
}
