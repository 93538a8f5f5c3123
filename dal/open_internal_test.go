package dal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplicaDialectors(t *testing.T) {
	c := DbConfig{Dialect: DIALECT_POSTGRES, Replicas: []string{"host=r1", "host=r2"}}
	replicas, err := c.replicaDialectors()
	require.NoError(t, err)
	require.Len(t, replicas, 2)
	for _, replica := range replicas {
		assert.Equal(t, DIALECT_POSTGRES, replica.Name())
	}
}

func TestReplicaDialectorsReportsBadDialect(t *testing.T) {
	c := DbConfig{Dialect: "sqlite", Replicas: []string{"file::memory:"}}
	replicas, err := c.replicaDialectors()
	assert.Nil(t, replicas)
	assert.ErrorContains(t, err, "replica 0")
	assert.ErrorContains(t, err, `unsupported database dialect "sqlite"`)
}
