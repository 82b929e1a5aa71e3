package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricing_Total_AllCombinations(t *testing.T) {
	p := DefaultPricing()

	for _, packing := range []bool{false, true} {
		for _, storage := range []bool{false, true} {
			for _, insurance := range []bool{false, true} {
				want := int64(89900)
				if packing {
					want += 15000
				}
				if storage {
					want += 20000
				}
				if insurance {
					want += 10000
				}

				got := p.Total(ServiceSelection{Packing: packing, Storage: storage, Insurance: insurance})
				assert.Equal(t, want, got, "packing=%v storage=%v insurance=%v", packing, storage, insurance)
			}
		}
	}
}

func TestPricing_Total_PackingAndInsurance(t *testing.T) {
	p := DefaultPricing()
	total := p.Total(ServiceSelection{Packing: true, Insurance: true})
	assert.Equal(t, int64(114900), total)
}
