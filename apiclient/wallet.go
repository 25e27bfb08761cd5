package apiclient

import (
	"context"
	"net/http"

	"roomfinder/models"

	"go.uber.org/zap"
)

// TransactionList is the canonical result of a wallet history call.
type TransactionList struct {
	Success      bool                       `json:"success"`
	Message      string                     `json:"message,omitempty"`
	Transactions []models.WalletTransaction `json:"transactions"`
	Pagination   models.Pagination          `json:"pagination"`
}

// WalletBalance fetches the current wallet balance.
func (c *Client) WalletBalance(ctx context.Context) (*models.WalletBalance, error) {
	payload, err := c.request(ctx, http.MethodGet, "/wallet/balance", nil)
	if err != nil {
		return nil, err
	}
	if data, ok := payload["data"].(map[string]any); ok {
		return decodeObject[models.WalletBalance](data)
	}
	return decodeObject[models.WalletBalance](payload)
}

// WalletTransactions lists the wallet ledger.
func (c *Client) WalletTransactions(ctx context.Context, page, limit int) (*TransactionList, error) {
	payload, err := c.request(ctx, http.MethodGet, listPath("/wallet/transactions", page, limit, nil), nil)
	if err != nil {
		return nil, err
	}
	res := normalizeList(payload, "transactions", limit)
	if !res.Success {
		return &TransactionList{Message: res.Message, Pagination: res.Pagination}, nil
	}
	items, err := decodeList[models.WalletTransaction](res.Items)
	if err != nil {
		c.logger.Warn("failed to decode wallet transactions", zap.Error(err))
		return &TransactionList{Message: "Malformed transaction data", Pagination: models.DefaultPagination(limit)}, nil
	}
	return &TransactionList{
		Success:      true,
		Message:      res.Message,
		Transactions: items,
		Pagination:   res.Pagination,
	}, nil
}

// RequestWithdrawal submits a withdrawal of part of the wallet balance.
func (c *Client) RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) error {
	_, err := c.request(ctx, http.MethodPost, "/wallet/withdrawals", req)
	return err
}
