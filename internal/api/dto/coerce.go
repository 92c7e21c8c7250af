package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Clients send numeric fields as either JSON numbers or strings
// (form-originated payloads); these types accept both.

// FlexInt is an integer that unmarshals from a number or a string.
// Fractional input is rejected rather than truncated.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	parsed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*f = FlexInt(parsed)
	return nil
}

// FlexFloat is a float that unmarshals from a number or a string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = FlexFloat(parsed)
	return nil
}

// FlexDecimal is an exact decimal that unmarshals from a number or a
// string, normalized to its textual form.
type FlexDecimal string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return err
	}
	*f = FlexDecimal(s)
	return nil
}

// Float returns the decimal's numeric value for range checks.
func (f FlexDecimal) Float() float64 {
	parsed, _ := strconv.ParseFloat(string(f), 64)
	return parsed
}

func unquote(data []byte) string {
	if len(data) >= 2 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return s
		}
	}
	return string(bytes.TrimSpace(data))
}
