package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"ccx-rpc/ccx-client/ccx"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// printJSON writes result indented, or as is when it is not valid json.
func printJSON(w io.Writer, result json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, result, "", "  "); err != nil {
		_, err = fmt.Fprintln(w, string(result))
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// printInt writes the integer at keys of result.
func printInt(w io.Writer, result json.RawMessage, keys ...string) error {
	n, err := jsonparser.GetInt(result, keys...)
	if err != nil {
		return errors.Wrapf(err, "read %v from %s failed", keys, result)
	}
	_, err = fmt.Fprintln(w, n)
	return err
}

// printAmounts writes raw amounts found at the given keys in CCX.
func printAmounts(w io.Writer, result json.RawMessage, labels, keys []string) error {
	for i, key := range keys {
		raw, err := jsonparser.GetInt(result, key)
		if err != nil {
			return errors.Wrapf(err, "read %s from %s failed", key, result)
		}
		_, err = fmt.Fprintf(w, "%s: %s CCX\n", labels[i], ccx.FromRaw(raw).StringFixed(ccx.Decimals))
		if err != nil {
			return err
		}
	}
	return nil
}
