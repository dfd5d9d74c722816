package ccx

import (
	"unicode/utf8"

	"ccx-rpc/ccx-base/validate"
)

// Int returns a pointer to v, for the optional fields of the option types.
func Int(v int64) *int64 {
	return &v
}

// Transfer is a single payment destination. Amount is in raw units.
type Transfer struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
	Message string `json:"message,omitempty"`
}

// Valid reports whether the destination is well formed.
func (t Transfer) Valid() bool {
	return validate.IsTransfer(t.Address, t.Amount)
}

// MessagesOptions are the arguments of Messages.
type MessagesOptions struct {
	FirstTxID *int64
	TxLimit   *int64
}

// SendOptions are the arguments of Send. Nil MixIn, UnlockHeight and Fee
// take their defaults.
type SendOptions struct {
	Transfers    []Transfer
	PaymentID    string
	MixIn        *int64
	UnlockHeight *int64
	Fee          *int64
}

// TransactionOptions are the arguments of SendTransaction and
// CreateDelayedTransaction. Addresses are the source addresses to spend from.
type TransactionOptions struct {
	Transfers     []Transfer
	Addresses     []string
	ChangeAddress string
	PaymentID     string
	Extra         string
	MixIn         *int64
	UnlockHeight  *int64
	Fee           *int64
}

// TransactionQuery selects blocks for GetTransactionHashes and
// GetTransactions. Exactly one of FirstBlockIndex and BlockHash must be set.
type TransactionQuery struct {
	BlockCount      int64
	FirstBlockIndex *int64
	BlockHash       string
	PaymentID       string
	Addresses       []string
}

// Wire payloads. They are built fresh from validated options on every call.

type messagesParams struct {
	FirstTxID *int64 `json:"first_tx_id,omitempty"`
	TxLimit   *int64 `json:"tx_limit,omitempty"`
}

type paymentsParams struct {
	PaymentID string `json:"payment_id"`
}

type transferParams struct {
	Destinations []Transfer `json:"destinations"`
	Mixin        int64      `json:"mixin"`
	Fee          int64      `json:"fee"`
	UnlockTime   int64      `json:"unlock_time"`
	PaymentID    string     `json:"payment_id,omitempty"`
}

type resetParams struct {
	ViewSecretKey string `json:"viewSecretKey,omitempty"`
}

type addressParams struct {
	Address string `json:"address"`
}

type addressesParams struct {
	Addresses []string `json:"addresses,omitempty"`
}

type blockHashesParams struct {
	FirstBlockIndex int64 `json:"firstBlockIndex"`
	BlockCount      int64 `json:"blockCount"`
}

type transactionHashParams struct {
	TransactionHash string `json:"transactionHash"`
}

type transactionQueryParams struct {
	BlockCount      int64    `json:"blockCount"`
	FirstBlockIndex *int64   `json:"firstBlockIndex,omitempty"`
	BlockHash       string   `json:"blockHash,omitempty"`
	PaymentID       string   `json:"paymentId,omitempty"`
	Addresses       []string `json:"addresses,omitempty"`
}

type sendTransactionParams struct {
	Transfers       []Transfer `json:"transfers"`
	SourceAddresses []string   `json:"sourceAddresses,omitempty"`
	ChangeAddress   string     `json:"changeAddress,omitempty"`
	PaymentID       string     `json:"paymentId,omitempty"`
	Extra           string     `json:"extra,omitempty"`
	Anonymity       int64      `json:"anonymity"`
	UnlockTime      int64      `json:"unlockTime"`
	Fee             int64      `json:"fee"`
}

type extraParams struct {
	Extra string `json:"extra"`
}

type hashParams struct {
	Hash string `json:"hash"`
}

type heightParams struct {
	Height int64 `json:"height"`
}

type blockTemplateParams struct {
	WalletAddress string `json:"wallet_address"`
	ReserveSize   int64  `json:"reserve_size"`
}

type transactionsParams struct {
	TxsHashes []string `json:"txs_hashes"`
}

type rawTransactionParams struct {
	TxAsHex string `json:"tx_as_hex"`
}

// MessageFee is the default fee of a transfer: the base fee plus a fee per
// character of every message.
func MessageFee(transfers []Transfer) int64 {
	fee := int64(DefaultFee)
	for _, t := range transfers {
		fee += int64(utf8.RuneCountInString(t.Message)) * DefaultCharacterFee
	}
	return fee
}

// DelayedFee is the default fee of a delayed transaction.
func DelayedFee(transfers []Transfer) int64 {
	return DefaultFee * int64(len(transfers))
}

func copyTransfers(transfers []Transfer) []Transfer {
	return append([]Transfer(nil), transfers...)
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

func checkTransfers(transfers []Transfer) error {
	if len(transfers) == 0 || !validate.IsArrayOf(transfers, Transfer.Valid) {
		return invalid("transfers", reasonTransfers)
	}
	return nil
}

func checkOptionalHex64(field, value string) error {
	if value != "" && !validate.IsHex64(value) {
		return invalid(field, reasonHex64)
	}
	return nil
}

func checkHex64(field, value string) error {
	if !validate.IsHex64(value) {
		return invalid(field, reasonHex64)
	}
	return nil
}

func checkAddress(field, value string) error {
	if !validate.IsAddress(value) {
		return invalid(field, reasonAddress)
	}
	return nil
}

func checkOptionalAddresses(field string, addrs []string) error {
	if addrs != nil && !validate.AllAddresses(addrs) {
		return invalid(field, reasonAddresses)
	}
	return nil
}

func checkNonNegative(field string, n int64) error {
	if !validate.IsNonNegativeInteger(n) {
		return invalid(field, reasonNonNegative)
	}
	return nil
}

func checkOptionalNonNegative(field string, n *int64) error {
	if n != nil {
		return checkNonNegative(field, *n)
	}
	return nil
}

func checkRequiredHex(field, value string) error {
	if value == "" {
		return invalid(field, reasonRequired)
	}
	if !validate.IsHexString(value) {
		return invalid(field, reasonHex)
	}
	return nil
}

// resolveMixIn applies the default and checks the range.
func resolveMixIn(v *int64) (int64, error) {
	mixIn := int64(MinMixIn)
	if v != nil {
		mixIn = *v
	}
	if mixIn < MinMixIn || mixIn > MaxMixIn {
		return 0, outOfRange("mixIn", MinMixIn, MaxMixIn)
	}
	return mixIn, nil
}

func resolveUnlockHeight(v *int64) (int64, error) {
	unlock := int64(DefaultUnlockHeight)
	if v != nil {
		unlock = *v
	}
	if err := checkNonNegative("unlockHeight", unlock); err != nil {
		return 0, err
	}
	return unlock, nil
}

func resolveFee(v *int64, transfers []Transfer, defaultFee func([]Transfer) int64) (int64, error) {
	var fee int64
	if v != nil {
		fee = *v
	} else {
		fee = defaultFee(transfers)
	}
	if fee < 0 {
		return 0, invalid("fee", reasonRawAmount)
	}
	return fee, nil
}
