package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-remittance/internal/catalog"
	"github.com/sbilibin2017/gw-remittance/internal/models"
)

// NewCurrenciesHandler serves the currency selector.
// @Summary List currencies
// @Description Returns the supported currencies. search matches code, name or alias, case-insensitively.
// @Tags catalog
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func NewCurrenciesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		found := catalog.SearchCurrencies(r.URL.Query().Get("search"))

		resp := models.CurrenciesResponse{Currencies: make([]models.CurrencyResponse, 0, len(found))}
		for _, c := range found {
			resp.Currencies = append(resp.Currencies, toCurrencyResponse(c))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewDeliveryMethodsHandler serves the delivery catalog.
// @Summary List delivery methods
// @Tags catalog
// @Produce json
// @Success 200 {object} models.DeliveryMethodsResponse
// @Router /delivery-methods [get]
func NewDeliveryMethodsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methods := catalog.DeliveryMethods()

		resp := models.DeliveryMethodsResponse{DeliveryMethods: make([]models.DeliveryMethodResponse, 0, len(methods))}
		for _, m := range methods {
			resp.DeliveryMethods = append(resp.DeliveryMethods, toDeliveryMethodResponse(m))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewPaymentMethodsHandler serves the payment catalog.
// @Summary List payment methods
// @Description Existing methods are selectable; other methods are offers to connect a new one.
// @Tags catalog
// @Produce json
// @Success 200 {object} models.PaymentMethodsResponse
// @Router /payment-methods [get]
func NewPaymentMethodsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups := catalog.PaymentMethods()

		resp := models.PaymentMethodsResponse{
			Existing: make([]models.PaymentMethodResponse, 0, len(groups.Existing)),
			Other:    make([]models.PaymentMethodResponse, 0, len(groups.Other)),
		}
		for _, m := range groups.Existing {
			resp.Existing = append(resp.Existing, toPaymentMethodResponse(m))
		}
		for _, m := range groups.Other {
			resp.Other = append(resp.Other, toPaymentMethodResponse(m))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
