package pstring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/rewrite/pkg/pstring"
)

func TestValidateAcceptsBalancedConstantConfig(t *testing.T) {
	cfg := pstring.Config{
		PDeletion:   0.1,
		PCorrectSub: 0.8,
		PIncorrectSub: pstring.SubDist{
			Kind:     pstring.Constant,
			Constant: 0.1,
		},
	}
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsUnbalancedMass(t *testing.T) {
	cfg := pstring.Config{
		PDeletion:   0.1,
		PCorrectSub: 0.1,
		PIncorrectSub: pstring.SubDist{
			Kind:     pstring.Constant,
			Constant: 0.1,
		},
	}
	require.Error(t, cfg.Validate())
}

func TestConfigRoundTripsThroughYAML(t *testing.T) {
	cfg := pstring.Config{
		Beta:        0.25,
		PInsertion:  0.05,
		PDeletion:   0.1,
		PCorrectSub: 0.75,
		PIncorrectSub: pstring.SubDist{
			Kind:   pstring.Bounded,
			Low:    0,
			High:   9,
			Weight: 0.1,
		},
	}
	data, err := cfg.Dump()
	require.NoError(t, err)

	back, err := pstring.Load(data)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}
