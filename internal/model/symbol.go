package model

// SymbolInfo is one entry of the static symbol reference list.
type SymbolInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Market string `json:"market"`
}
