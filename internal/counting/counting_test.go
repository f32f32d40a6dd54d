package counting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchupsNumberFor(t *testing.T) {
	assert.Equal(t, uint64(0), MatchupsNumberFor(1, 2))
	assert.Equal(t, uint64(12), MatchupsNumberFor(8, 2))
}

func TestComparisonsNumberFor(t *testing.T) {
	assert.Equal(t, uint64(3), ComparisonsNumberFor(1, 3))
	assert.Equal(t, uint64(30), ComparisonsNumberFor(10, 3))
}

func TestComparisonsNumberFor_Base2(t *testing.T) {
	assert.Equal(t, uint64(5), ComparisonsNumberFor(5, 2))
}
