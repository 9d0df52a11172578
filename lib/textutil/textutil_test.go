package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "korearep", NormalizeName("Korea, Rep."))
	require.Equal(t, "korearep", NormalizeName(" korea  rep "))
	require.Equal(t, "guineabissau", NormalizeName("Guinea-Bissau"))
	require.Equal(t, "cotedivoire", NormalizeName("Cote d'Ivoire"))
}
