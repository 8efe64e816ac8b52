package storage

import (
	"encoding/json"
	"fmt"

	"couponstash/internal/core"
)

type (
	// couponRecord is a coupon flattened to plain values for storage.
	couponRecord struct {
		Name       string
		Phone      string
		Email      string
		ExpiryDate string
		Usage      int
		Limit      int
		Savings    string
		Tags       string
		SavingsMap string
	}

	savingsRecord struct {
		MonetaryAmount   string   `json:"monetary_amount,omitempty"`
		PercentageAmount string   `json:"percentage_amount,omitempty"`
		Saveables        []string `json:"saveables,omitempty"`
	}

	pureSavingsRecord struct {
		Amount    string   `json:"amount"`
		Saveables []string `json:"saveables,omitempty"`
	}
)

func toRecord(c core.Coupon) (couponRecord, error) {
	savings, err := json.Marshal(encodeSavings(c.Savings()))
	if err != nil {
		return couponRecord{}, fmt.Errorf("encode savings: %w", err)
	}

	tagNames := make([]string, 0, c.Tags().Len())
	for _, t := range c.Tags().Tags() {
		tagNames = append(tagNames, t.String())
	}
	tags, err := json.Marshal(tagNames)
	if err != nil {
		return couponRecord{}, fmt.Errorf("encode tags: %w", err)
	}

	history := c.SavingsMap()
	entries := make(map[string]pureSavingsRecord, history.Len())
	for _, day := range history.Dates() {
		s, _ := history.Get(day)
		entries[day.String()] = pureSavingsRecord{
			Amount:    s.MonetaryAmount().String(),
			Saveables: saveableStrings(s.Saveables()),
		}
	}
	savingsMap, err := json.Marshal(entries)
	if err != nil {
		return couponRecord{}, fmt.Errorf("encode savings map: %w", err)
	}

	return couponRecord{
		Name:       c.Name().String(),
		Phone:      c.Phone().String(),
		Email:      c.Email().String(),
		ExpiryDate: c.ExpiryDate().String(),
		Usage:      c.Usage().Value(),
		Limit:      c.Limit().Value(),
		Savings:    string(savings),
		Tags:       string(tags),
		SavingsMap: string(savingsMap),
	}, nil
}

// toCoupon validates every field again, so a corrupted row fails to load
// instead of producing an invalid coupon.
func (r couponRecord) toCoupon() (core.Coupon, error) {
	var (
		f   core.CouponFields
		err error
	)
	if f.Name, err = core.NewName(r.Name); err != nil {
		return core.Coupon{}, fmt.Errorf("name %q: %w", r.Name, err)
	}
	if r.Phone != "" {
		if f.Phone, err = core.NewPhone(r.Phone); err != nil {
			return core.Coupon{}, fmt.Errorf("phone %q: %w", r.Phone, err)
		}
	}
	if r.Email != "" {
		if f.Email, err = core.NewEmail(r.Email); err != nil {
			return core.Coupon{}, fmt.Errorf("email %q: %w", r.Email, err)
		}
	}
	if f.ExpiryDate, err = core.NewExpiryDate(r.ExpiryDate); err != nil {
		return core.Coupon{}, fmt.Errorf("expiry date %q: %w", r.ExpiryDate, err)
	}
	if f.Usage, err = core.NewUsage(r.Usage); err != nil {
		return core.Coupon{}, fmt.Errorf("usage %d: %w", r.Usage, err)
	}
	if f.Limit, err = core.NewLimit(r.Limit); err != nil {
		return core.Coupon{}, fmt.Errorf("limit %d: %w", r.Limit, err)
	}

	var sr savingsRecord
	if err := json.Unmarshal([]byte(r.Savings), &sr); err != nil {
		return core.Coupon{}, fmt.Errorf("decode savings: %w", err)
	}
	if f.Savings, err = decodeSavings(sr); err != nil {
		return core.Coupon{}, err
	}

	var tagNames []string
	if err := json.Unmarshal([]byte(r.Tags), &tagNames); err != nil {
		return core.Coupon{}, fmt.Errorf("decode tags: %w", err)
	}
	tags := make([]core.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		t, err := core.NewTag(name)
		if err != nil {
			return core.Coupon{}, fmt.Errorf("tag %q: %w", name, err)
		}
		tags = append(tags, t)
	}
	f.Tags = core.NewTagSet(tags...)

	var entries map[string]pureSavingsRecord
	if err := json.Unmarshal([]byte(r.SavingsMap), &entries); err != nil {
		return core.Coupon{}, fmt.Errorf("decode savings map: %w", err)
	}
	for day, entry := range entries {
		d, err := core.ParseDate(day)
		if err != nil {
			return core.Coupon{}, err
		}
		amount, err := core.ParseMonetaryAmount(entry.Amount)
		if err != nil {
			return core.Coupon{}, fmt.Errorf("savings on %s: %w", day, err)
		}
		saveables, err := parseSaveables(entry.Saveables)
		if err != nil {
			return core.Coupon{}, err
		}
		f.SavingsMap.Add(d, core.NewPureMonetarySavings(amount, saveables...))
	}

	return core.NewCoupon(f), nil
}

func encodeSavings(s core.Savings) savingsRecord {
	r := savingsRecord{Saveables: saveableStrings(s.Saveables())}
	if m, ok := s.MonetaryAmount(); ok {
		r.MonetaryAmount = m.String()
	}
	if p, ok := s.PercentageAmount(); ok {
		r.PercentageAmount = p.Decimal().String()
	}
	return r
}

func decodeSavings(r savingsRecord) (core.Savings, error) {
	var (
		monetary   *core.MonetaryAmount
		percentage *core.PercentageAmount
	)
	if r.MonetaryAmount != "" {
		m, err := core.ParseMonetaryAmount(r.MonetaryAmount)
		if err != nil {
			return core.Savings{}, fmt.Errorf("monetary amount %q: %w", r.MonetaryAmount, err)
		}
		monetary = &m
	}
	if r.PercentageAmount != "" {
		p, err := core.ParsePercentageAmount(r.PercentageAmount)
		if err != nil {
			return core.Savings{}, fmt.Errorf("percentage amount %q: %w", r.PercentageAmount, err)
		}
		percentage = &p
	}
	saveables, err := parseSaveables(r.Saveables)
	if err != nil {
		return core.Savings{}, err
	}
	s, err := core.NewSavings(monetary, percentage, saveables)
	if err != nil {
		return core.Savings{}, fmt.Errorf("savings: %w", err)
	}
	return s, nil
}

func saveableStrings(in []core.Saveable) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = s.String()
	}
	return out
}

func parseSaveables(in []string) ([]core.Saveable, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]core.Saveable, len(in))
	for i, v := range in {
		s, err := core.NewSaveable(v)
		if err != nil {
			return nil, fmt.Errorf("saveable %q: %w", v, err)
		}
		out[i] = s
	}
	return out, nil
}
