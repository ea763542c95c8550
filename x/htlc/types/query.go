package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Legacy querier route segments.
const (
	QuerySwap       = "swap"
	QuerySwapExists = "swap_exists"
	QueryUserSwaps  = "user_swaps"
	QueryStats      = "stats"
	QueryResolver   = "resolver"
)

type QuerySwapRequest struct {
	Id string `json:"id"`
}

type QuerySwapResponse struct {
	Swap Swap `json:"swap"`
}

type QuerySwapExistsResponse struct {
	Exists bool `json:"exists"`
}

type QueryUserSwapsRequest struct {
	User sdk.AccAddress `json:"user"`
}

type QueryUserSwapsResponse struct {
	Ids []string `json:"ids"`
}

type QueryStatsResponse struct {
	Stats ContractStats `json:"stats"`
}

type QueryResolverRequest struct {
	Resolver sdk.AccAddress `json:"resolver"`
}

type QueryResolverResponse struct {
	Info ResolverInfo `json:"info"`
}
