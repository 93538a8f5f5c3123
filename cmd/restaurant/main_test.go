package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_system/custom/util"
)

func TestCloseDB(t *testing.T) {
	_, gormDB, mock := util.DbMock(t)
	mock.ExpectClose()

	require.NoError(t, closeDB(gormDB))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseDBReportsFailure(t *testing.T) {
	_, gormDB, mock := util.DbMock(t)
	mock.ExpectClose().WillReturnError(fmt.Errorf("connection reset"))

	err := closeDB(gormDB)
	assert.ErrorContains(t, err, "failed to close database")
	assert.ErrorContains(t, err, "connection reset")
}
