package main

import (
	"encoding/json"
	"net/http"

	"github.com/Simplici0/tradedesk/internal/catalog"
	"github.com/Simplici0/tradedesk/internal/landedcost"
)

const maxJSONBody = 1 << 20

type calculatorViewData struct {
	baseViewData
	Form                 landedcost.RawInput
	Input                landedcost.Input
	Result               *landedcost.Breakdown
	OriginCountries      []catalog.Option
	DestinationCountries []catalog.Option
	ShippingModes        []catalog.Option
	Comparison           []catalog.ShippingOption
	ComparisonMax        int
}

type apiError struct {
	Error string `json:"error"`
}

type dutiesResponse struct {
	ProductValue    float64 `json:"productValue"`
	Quantity        int64   `json:"quantity"`
	HSCode          string  `json:"hsCode,omitempty"`
	Duties          float64 `json:"duties"`
	Taxes           float64 `json:"taxes"`
	Shipping        float64 `json:"shipping"`
	Insurance       float64 `json:"insurance"`
	Brokerage       float64 `json:"brokerage"`
	Other           float64 `json:"other"`
	TotalLandedCost float64 `json:"totalLandedCost"`
	OverheadPercent float64 `json:"overheadPercent"`
}

func (s *server) calculatorView(form landedcost.RawInput) calculatorViewData {
	data := calculatorViewData{
		baseViewData:         baseViewData{ActivePage: "calculator"},
		Form:                 form,
		OriginCountries:      catalog.OriginCountries,
		DestinationCountries: catalog.DestinationCountries,
		ShippingModes:        catalog.ShippingModes,
		Comparison:           catalog.ShippingComparison,
	}
	for _, option := range catalog.ShippingComparison {
		data.ComparisonMax = max(data.ComparisonMax, option.Cost)
	}
	return data
}

func (s *server) handleCalculatorForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, "calculator.html", s.calculatorView(landedcost.RawInput{}))
}

func (s *server) handleCalculatorSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := parseCalculatorForm(r)
	input := landedcost.ParseInput(form)
	result := landedcost.Calculate(input)

	data := s.calculatorView(form)
	data.Input = input
	data.Result = &result
	s.renderTemplate(w, "calculator.html", data)
}

func parseCalculatorForm(r *http.Request) landedcost.RawInput {
	return landedcost.RawInput{
		ProductValue:       r.FormValue("productValue"),
		Quantity:           r.FormValue("quantity"),
		HSCode:             r.FormValue("hsCode"),
		OriginCountry:      r.FormValue("originCountry"),
		DestinationCountry: r.FormValue("destinationCountry"),
		ShippingMode:       r.FormValue("shippingMode"),
		Weight:             r.FormValue("weight"),
		Dimensions:         r.FormValue("dimensions"),
	}
}

func (s *server) handleDutiesAPI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductValue       json.RawMessage `json:"productValue"`
		Quantity           json.RawMessage `json:"quantity"`
		HSCode             string          `json:"hsCode"`
		OriginCountry      string          `json:"originCountry"`
		DestinationCountry string          `json:"destinationCountry"`
		ShippingMode       string          `json:"shippingMode"`
		Weight             json.RawMessage `json:"weight"`
		Dimensions         string          `json:"dimensions"`
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body"})
		return
	}

	input := landedcost.ParseInput(landedcost.RawInput{
		ProductValue:       scalarText(req.ProductValue),
		Quantity:           scalarText(req.Quantity),
		HSCode:             req.HSCode,
		OriginCountry:      req.OriginCountry,
		DestinationCountry: req.DestinationCountry,
		ShippingMode:       req.ShippingMode,
		Weight:             scalarText(req.Weight),
		Dimensions:         req.Dimensions,
	})
	b := landedcost.Calculate(input)

	writeJSON(w, http.StatusOK, dutiesResponse{
		ProductValue:    b.ProductValue.InexactFloat64(),
		Quantity:        input.Quantity,
		HSCode:          input.HSCode,
		Duties:          b.Duties.InexactFloat64(),
		Taxes:           b.Taxes.InexactFloat64(),
		Shipping:        b.Shipping.InexactFloat64(),
		Insurance:       b.Insurance.InexactFloat64(),
		Brokerage:       b.Brokerage.InexactFloat64(),
		Other:           b.Other.InexactFloat64(),
		TotalLandedCost: b.TotalLandedCost.InexactFloat64(),
		OverheadPercent: b.OverheadPercent().Round(2).InexactFloat64(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// scalarText returns a JSON scalar as text: strings are unquoted, numbers and
// other literals are returned verbatim, null and missing values are empty.
func scalarText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return string(raw)
}
