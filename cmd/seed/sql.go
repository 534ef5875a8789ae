package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jhoicas/stockpro/internal/domain/entity"
)

type snapshot struct {
	products    []*entity.Product
	movements   []*entity.StockMovement
	credentials []*entity.Credential
	users       []*entity.Credential
}

// writeSQL emite los INSERT en una transacción. ON CONFLICT DO NOTHING permite reejecutar el script.
func writeSQL(buf *bytes.Buffer, snap *snapshot) {
	buf.WriteString("BEGIN;\n\n")

	for _, p := range snap.products {
		fmt.Fprintf(buf,
			"INSERT INTO products (id, name, category, description, unit, tags, image, current_stock, initial_stock, min_stock, cost_price, user_id) "+
				"VALUES (%s, %s, %s, %s, %s, %s, %s, %d, %d, %d, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			quote(p.ID), quote(p.Name), quote(p.Category), quote(p.Description), quote(p.Unit),
			textArray(p.Tags), quote(p.Image), p.CurrentStock, p.InitialStock, p.MinStock,
			p.CostPrice.String(), quote(p.UserID))
	}
	if len(snap.products) > 0 {
		buf.WriteString("\n")
	}

	for _, m := range snap.movements {
		fmt.Fprintf(buf,
			"INSERT INTO movements (id, product_id, product_name, type, quantity, reason, movement_date, observations, created_ms, user_id) "+
				"VALUES (%s, %s, %s, %s, %d, %s, %s, %s, %d, %s) ON CONFLICT (id) DO NOTHING;\n",
			quote(m.ID), quote(m.ProductID), quote(m.ProductName), quote(m.Type), m.Quantity,
			quote(m.Reason), quote(m.Date), quote(m.Observations), m.Timestamp, quote(m.UserID))
	}
	if len(snap.movements) > 0 {
		buf.WriteString("\n")
	}

	writeUsers(buf, "credentials", snap.credentials)
	writeUsers(buf, "managed_users", snap.users)

	buf.WriteString("COMMIT;\n")
}

func writeUsers(buf *bytes.Buffer, table string, users []*entity.Credential) {
	for _, u := range users {
		fmt.Fprintf(buf,
			"INSERT INTO %s (username, password, role, unit) VALUES (%s, %s, %s, %s) ON CONFLICT (username) DO NOTHING;\n",
			table, quote(u.Username), quote(u.Password), quote(entity.NormalizeRole(u.Role)), quote(u.Unit))
	}
	if len(users) > 0 {
		buf.WriteString("\n")
	}
}

// quote literal SQL con comillas simples escapadas.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func textArray(items []string) string {
	if len(items) == 0 {
		return "'{}'::text[]"
	}
	q := make([]string, len(items))
	for i, it := range items {
		q[i] = quote(it)
	}
	return "ARRAY[" + strings.Join(q, ", ") + "]::text[]"
}
