package restapi

import (
	"net/http"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// APISDKResponse is the body of GET /api/v1/sdk.
type APISDKResponse struct {
	Data struct {
		Ready     bool               `json:"ready"`
		Publishes uint64             `json:"publishes"`
		SDK       *entity.SDKSummary `json:"sdk,omitempty"`
	} `json:"data"`
	StatusMessage string `json:"status_message"`
}

// APIConfigResponse is the body of GET /api/v1/sdk/config.
type APIConfigResponse struct {
	Data struct {
		Config *entity.ClientConfig `json:"config,omitempty"`
	} `json:"data"`
	StatusMessage string `json:"status_message"`
}

// SDKHandler serves the read model of the published SDK.
type SDKHandler struct {
	state   port.SDKStateReader
	configs port.ClientConfigReader
	logger  port.Logger
}

// NewSDKHandler создает новый экземпляр SDKHandler.
func NewSDKHandler(state port.SDKStateReader, configs port.ClientConfigReader, logger port.Logger) *SDKHandler {
	return &SDKHandler{state: state, configs: configs, logger: logger}
}

// GetSDKHandler returns a summary of the currently published SDK.
func (h *SDKHandler) GetSDKHandler(c *gin.Context) {
	var response APISDKResponse
	response.Data.Publishes = h.state.Publishes()

	sdk := h.state.Current()
	if sdk == nil {
		response.StatusMessage = "SDK is not initialized yet."
		c.JSON(http.StatusOK, response)
		return
	}

	response.Data.Ready = true
	if describer, ok := sdk.(port.SDKDescriber); ok {
		summary := describer.Summary()
		response.Data.SDK = &summary
	}
	response.StatusMessage = "SDK is initialized."
	c.JSON(http.StatusOK, response)
}

// GetConfigHandler returns the config the current SDK was built from.
func (h *SDKHandler) GetConfigHandler(c *gin.Context) {
	var response APIConfigResponse

	cfg, ok := h.configs.LastConfig()
	if !ok {
		response.StatusMessage = "No SDK config has been built yet."
		c.JSON(http.StatusNotFound, response)
		return
	}

	response.Data.Config = &cfg
	response.StatusMessage = "SDK config retrieved successfully."
	c.JSON(http.StatusOK, response)
}
