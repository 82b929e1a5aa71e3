package domain

// Pricing holds the flat base fare and per-service surcharges, all in cents.
type Pricing struct {
	BaseFareCents  int64
	PackingCents   int64
	StorageCents   int64
	InsuranceCents int64
}

// DefaultPricing mirrors the published rate card.
func DefaultPricing() Pricing {
	return Pricing{
		BaseFareCents:  89900,
		PackingCents:   15000,
		StorageCents:   20000,
		InsuranceCents: 10000,
	}
}

func (p Pricing) Total(sel ServiceSelection) int64 {
	total := p.BaseFareCents
	if sel.Packing {
		total += p.PackingCents
	}
	if sel.Storage {
		total += p.StorageCents
	}
	if sel.Insurance {
		total += p.InsuranceCents
	}
	return total
}
