package restapi

import (
	"net/http"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// WalletRequest is the body of PUT /api/v1/wallet.
type WalletRequest struct {
	Address      string `json:"address"`
	Provider     string `json:"provider"`
	Web3Provider string `json:"web3Provider"`
	Signer       string `json:"signer"`
}

// APIWalletResponse is returned by the wallet endpoints.
type APIWalletResponse struct {
	Data struct {
		Wallet    entity.WalletIdentity `json:"wallet"`
		Connected bool                  `json:"connected"`
	} `json:"data"`
	StatusMessage string `json:"status_message"`
}

// APIErrorResponse is returned when a request cannot be served.
type APIErrorResponse struct {
	Error string `json:"error"`
}

// WalletHandler accepts wallet connection events.
type WalletHandler struct {
	wallets port.WalletStore
	logger  port.Logger
}

// NewWalletHandler создает новый экземпляр WalletHandler.
func NewWalletHandler(wallets port.WalletStore, logger port.Logger) *WalletHandler {
	return &WalletHandler{wallets: wallets, logger: logger}
}

// GetWalletHandler returns the connected wallet identity.
func (h *WalletHandler) GetWalletHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.walletResponse("Wallet retrieved successfully."))
}

// PutWalletHandler connects a wallet or changes any of its fields.
func (h *WalletHandler) PutWalletHandler(c *gin.Context) {
	var req WalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "malformed wallet request: " + err.Error()})
		return
	}

	identity := entity.WalletIdentity{
		Address:      req.Address,
		Provider:     entity.Handle(req.Provider),
		Web3Provider: entity.Handle(req.Web3Provider),
		Signer:       entity.Handle(req.Signer),
	}
	if err := h.wallets.Connect(identity); err != nil {
		h.logger.Warn("Rejected wallet update", "address", req.Address, "error", err)
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.walletResponse("Wallet updated."))
}

// DeleteWalletHandler disconnects the wallet.
func (h *WalletHandler) DeleteWalletHandler(c *gin.Context) {
	h.wallets.Disconnect()
	c.JSON(http.StatusOK, h.walletResponse("Wallet disconnected."))
}

func (h *WalletHandler) walletResponse(message string) APIWalletResponse {
	var response APIWalletResponse
	response.Data.Wallet = h.wallets.Current()
	response.Data.Connected = response.Data.Wallet.Connected()
	response.StatusMessage = message
	return response
}
