package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"listing-engine/internal/commitment"
	"listing-engine/services/listing/helpers"

	"github.com/stretchr/testify/require"
)

var (
	base      = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	auctionAt = base.Add(1 * time.Hour)
	revealAt  = base.Add(2 * time.Hour)
	endAt     = base.Add(3 * time.Hour)
)

func createListing(t *testing.T, env *TestEnv, groupable bool) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/listings", helpers.CreateListingRequest{
		Creator:          "0xcreator",
		ProductRef:       "ipfs://laptop-batch",
		Groupable:        groupable,
		LeadTimeMaxHours: 72,
		CreationTime:     base,
		AuctionTime:      auctionAt,
		RevealTime:       revealAt,
		EndTime:          endAt,
		MinMerit:         2,
		PriceCeiling:     100,
		FirstPriceMode:   true,
		Payment:          testCreationFee,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	return Data(t, resp)["listing_id"].(string)
}

// Full lifecycle over the HTTP surface: registration, pooling, sealed
// bidding, reveal, settlement, provenance, withdrawal.
func TestListingLifecycleAPI(t *testing.T) {
	env := SetupTestEnv(base.Add(time.Minute))
	admin := AdminToken(t)

	// registry writes require the admin token
	_, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/users",
		helpers.AddUserRequest{Address: "0xsupplier1", Merit: 3}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	for _, addr := range []string{"0xsupplier1", "0xsupplier2"} {
		_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/users",
			helpers.AddUserRequest{Address: addr, Merit: 3}, admin)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	id := createListing(t, env, true)

	// wrong creation fee is rejected
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings", helpers.CreateListingRequest{
		Creator:          "0xcreator",
		ProductRef:       "ipfs://other",
		LeadTimeMaxHours: 72,
		CreationTime:     base,
		AuctionTime:      auctionAt,
		RevealTime:       revealAt,
		EndTime:          endAt,
		PriceCeiling:     100,
		Payment:          testCreationFee + 1,
	}, "")
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	// pooling phase
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/buyers",
		helpers.JoinBuyerRequest{Buyer: "0xbuyer1", Quantity: 3, Payment: 300}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/buyers",
		helpers.JoinBuyerRequest{Buyer: "0xbuyer2", Quantity: 5, Payment: 500}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// suppliers cannot commit before the auction opens
	commit1 := commitment.Compute("0xsupplier1", 90, "salt-1")
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/suppliers",
		helpers.JoinSupplierRequest{Supplier: "0xsupplier1", Commitment: commit1, Quantity: 5, Bond: testBidBond}, "")
	require.Equal(t, http.StatusConflict, w.Code)

	// sealed bidding phase
	env.SetNow(auctionAt.Add(time.Minute))
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/suppliers",
		helpers.JoinSupplierRequest{Supplier: "0xsupplier1", Commitment: commit1, Quantity: 5, Bond: testBidBond}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	commit2 := commitment.Compute("0xsupplier2", 95, "salt-2")
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/suppliers",
		helpers.JoinSupplierRequest{Supplier: "0xsupplier2", Commitment: commit2, Quantity: 5, Bond: testBidBond}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// reveal too early
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/reveals",
		helpers.RevealBidRequest{Supplier: "0xsupplier1", Value: 90, Salt: "salt-1"}, "")
	require.Equal(t, http.StatusConflict, w.Code)

	// reveal phase
	env.SetNow(revealAt.Add(time.Minute))
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/reveals",
		helpers.RevealBidRequest{Supplier: "0xsupplier1", Value: 90, Salt: "salt-1"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/reveals",
		helpers.RevealBidRequest{Supplier: "0xsupplier2", Value: 95, Salt: "salt-2"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	// settlement before end time is rejected
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/settlement", nil, "")
	require.Equal(t, http.StatusConflict, w.Code)

	env.SetNow(endAt.Add(time.Minute))
	resp, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/settlement", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	settled := Data(t, resp)
	require.Equal(t, "0xsupplier1", settled["winner"])
	require.Equal(t, float64(8), settled["fulfilled"])
	require.Len(t, settled["accepted"].([]any), 2)

	// settling twice is rejected
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/settlement", nil, "")
	require.Equal(t, http.StatusConflict, w.Code)

	// snapshot reflects the terminal state and carries the batch token
	resp, w = ExecuteRequestAndParse(t, env, http.MethodGet, "/listings/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	snap := Data(t, resp)
	listingData := snap["listing"].(map[string]any)
	require.Equal(t, "settled", snap["phase"])
	require.Equal(t, true, listingData["settled"])
	tokenID := listingData["token_id"].(string)
	require.NotEmpty(t, tokenID)

	resp, w = ExecuteRequestAndParse(t, env, http.MethodGet, "/tokens/"+tokenID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	tok := Data(t, resp)
	require.Equal(t, "0xsupplier1", tok["owner"])
	require.Equal(t, float64(8), tok["quantity"])

	// provenance attribution to a buyer
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/tokens/"+tokenID+"/transfers",
		helpers.TransferTokenRequest{To: "0xbuyer2", Quantity: 5}, "")
	require.Equal(t, http.StatusOK, w.Code)

	// pull payouts: winner gets 90*5 + bond back
	resp, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/withdrawals",
		helpers.WithdrawRequest{Caller: "0xsupplier1"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(450+testBidBond), Data(t, resp)["total"])

	// second withdrawal finds nothing
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/withdrawals",
		helpers.WithdrawRequest{Caller: "0xsupplier1"}, "")
	require.Equal(t, http.StatusConflict, w.Code)

	// event stream is ordered and complete
	resp, w = ExecuteRequestAndParse(t, env, http.MethodGet, "/listings/"+id+"/events", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	entries := resp["data"].([]any)
	var types []string
	for _, raw := range entries {
		entry := raw.(map[string]any)
		types = append(types, entry["type"].(string))
	}
	require.Equal(t, []string{
		"ListingProduced", "ListingBuilt",
		"NewBuyer", "NewBuyer",
		"SupplierJoined", "SupplierJoined",
		"RevealMade", "WinnerUpdated", "RevealMade",
		"DistributionComplete",
		"FullWithdrawal",
	}, types)
}

// Cancellation is admin-gated and refunds everyone in full.
func TestListingCancellationAPI(t *testing.T) {
	env := SetupTestEnv(base.Add(time.Minute))
	admin := AdminToken(t)

	id := createListing(t, env, false)

	_, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/buyers",
		helpers.JoinBuyerRequest{Buyer: "0xbuyer1", Quantity: 2, Payment: 200}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// cancellation without the token is rejected
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/cancellation", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/cancellation", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	// joining a canceled listing fails
	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/buyers",
		helpers.JoinBuyerRequest{Buyer: "0xbuyer2", Quantity: 1, Payment: 100}, "")
	require.Equal(t, http.StatusConflict, w.Code)

	resp, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/listings/"+id+"/withdrawals",
		helpers.WithdrawRequest{Caller: "0xbuyer1"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(200), Data(t, resp)["total"])
}

// Unknown resources return 404 across the surface.
func TestUnknownResourcesAPI(t *testing.T) {
	env := SetupTestEnv(base)

	for _, tc := range []struct {
		method string
		url    string
		body   any
	}{
		{http.MethodGet, "/listings/nope", nil},
		{http.MethodGet, "/listings/nope/events", nil},
		{http.MethodGet, "/tokens/nope", nil},
		{http.MethodPost, "/listings/nope/withdrawals", helpers.WithdrawRequest{Caller: "0xbuyer1"}},
	} {
		_, w := ExecuteRequestAndParse(t, env, tc.method, tc.url, tc.body, "")
		require.Equalf(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.url)
	}
}
