package configsqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchema = `
create table if not exists parents (id integer primary key);
create table if not exists children (
	id integer primary key,
	parent_id integer not null references parents(id) on delete cascade
);`

func TestOpenEnforcesForeignKeys(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:", testSchema)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, err = db.Exec("insert into children (parent_id) values (42)")
	require.Error(t, err)

	_, err = db.Exec("insert into parents (id) values (1)")
	require.NoError(t, err)
	_, err = db.Exec("insert into children (parent_id) values (1)")
	require.NoError(t, err)
	_, err = db.Exec("delete from parents where id = 1")
	require.NoError(t, err)

	var count int
	err = db.QueryRow("select count(*) from children").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestOpenDBFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventizer.db")
	db, err := Struct{File: path}.OpenDB(context.Background(), testSchema)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var mode string
	err = db.QueryRow("PRAGMA journal_mode").Scan(&mode)
	require.NoError(t, err)
	require.Equal(t, "wal", mode)

	_, err = Struct{}.OpenDB(context.Background(), testSchema)
	require.Error(t, err)
}
