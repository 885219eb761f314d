package floorplan_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shoproute/floorplan"
)

func TestEntrance_FirstWins(t *testing.T) {
	fp := &floorplan.FloorPlan{Cells: []floorplan.Cell{
		{X: 3, Y: 3, Type: floorplan.Shelf},
		{X: 0, Y: 9, Type: floorplan.Entrance},
		{X: 9, Y: 0, Type: floorplan.Entrance},
	}}
	p, err := fp.Entrance()
	require.NoError(t, err)
	assert.Equal(t, floorplan.Point{X: 0, Y: 9}, p)
}

func TestEntrance_Missing(t *testing.T) {
	fp := &floorplan.FloorPlan{Cells: []floorplan.Cell{{X: 1, Y: 1, Type: floorplan.Shelf}}}
	_, err := fp.Entrance()
	require.ErrorIs(t, err, floorplan.ErrNoEntrance)
}

func TestParseCellType(t *testing.T) {
	cases := []struct {
		label string
		want  floorplan.CellType
	}{
		{"entrance", floorplan.Entrance},
		{"Entrada", floorplan.Entrance},
		{"Prateleira", floorplan.Shelf},
		{"Frios", floorplan.Fridge},
		{"Caixa", floorplan.CheckoutCounter},
		{"Obstáculo", floorplan.Obstacle},
		{" OBSTACLE ", floorplan.Obstacle},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			got, err := floorplan.ParseCellType(tc.label)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := floorplan.ParseCellType("lava")
	require.ErrorIs(t, err, floorplan.ErrCellType)
}

func TestDimensions_Defaults(t *testing.T) {
	fp := &floorplan.FloorPlan{}
	w, h := fp.Dimensions()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)

	fp = &floorplan.FloorPlan{Width: 4, Height: 7}
	w, h = fp.Dimensions()
	assert.Equal(t, 4, w)
	assert.Equal(t, 7, h)
}

func TestDecode_RoundTripKeepsOrder(t *testing.T) {
	src := `
store_id: s1
width: 6
height: 5
cells:
  - {x: 0, y: 0, type: Entrada}
  - {x: 2, y: 2, type: shelf}
  - {x: 4, y: 1, type: Caixa}
`
	fp, err := floorplan.Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, fp.Cells, 3)
	assert.Equal(t, "s1", fp.StoreID)
	assert.Equal(t, floorplan.Entrance, fp.Cells[0].Type)
	assert.Equal(t, floorplan.CheckoutCounter, fp.Cells[2].Type)

	var buf bytes.Buffer
	require.NoError(t, floorplan.Encode(&buf, fp))
	back, err := floorplan.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, fp, back)
}

func TestDecode_Rejects(t *testing.T) {
	_, err := floorplan.Decode(strings.NewReader("cells:\n  - {x: 1, y: 1, type: lava}\n"))
	require.ErrorIs(t, err, floorplan.ErrCellType)

	_, err = floorplan.Decode(strings.NewReader("colls: []\n"))
	require.Error(t, err)

	_, err = floorplan.Decode(strings.NewReader("width: -1\n"))
	require.ErrorIs(t, err, floorplan.ErrDimensions)
}

func TestDecode_JSONKeys(t *testing.T) {
	fp := &floorplan.FloorPlan{
		StoreID: "s1",
		Width:   6,
		Height:  5,
		Cells: []floorplan.Cell{
			{X: 0, Y: 0, Type: floorplan.Entrance},
			{X: 2, Y: 2, Type: floorplan.Shelf},
			{X: 4, Y: 1, Type: floorplan.CheckoutCounter},
		},
	}
	data, err := json.Marshal(fp)
	require.NoError(t, err)
	require.Contains(t, string(data), `"items"`)

	back, err := floorplan.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, fp, back)

	_, err = floorplan.Decode(strings.NewReader(`{"storeId": "s1", "cells": []}`))
	require.Error(t, err)

	_, err = floorplan.Decode(strings.NewReader(`  {"items": [{"x": 1, "y": 1, "type": "lava"}]}`))
	require.ErrorIs(t, err, floorplan.ErrCellType)

	_, err = floorplan.Decode(strings.NewReader(`{"width": -1}`))
	require.ErrorIs(t, err, floorplan.ErrDimensions)
}

func TestDecodeList_JSONKeys(t *testing.T) {
	loc := floorplan.Point{X: 2, Y: 2}
	sl := &floorplan.ShoppingList{
		StoreID: "s1",
		Items: []floorplan.Item{
			{ProductID: "milk", Quantity: 2, Location: &loc},
			{ProductID: "eggs", Name: "Eggs"},
		},
	}
	data, err := json.Marshal(sl)
	require.NoError(t, err)

	back, err := floorplan.DecodeList(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, sl, back)

	back, err = floorplan.DecodeList(strings.NewReader(
		`{"storeId": "s1", "products": [{"productId": "bread", "location": {"x": 1, "y": 3}}]}`))
	require.NoError(t, err)
	targets, err := back.Targets()
	require.NoError(t, err)
	assert.Equal(t, []floorplan.ShelfTarget{{ProductID: "bread", Location: floorplan.Point{X: 1, Y: 3}}}, targets)

	_, err = floorplan.DecodeList(strings.NewReader(`{"products": [{"product_id": "bread"}]}`))
	require.Error(t, err)
}

func TestShoppingList_Targets(t *testing.T) {
	src := `
products:
  - {product_id: milk, quantity: 2, location: {x: 2, y: 2}}
  - {product_id: eggs, location: {x: 2, y: 5}}
`
	sl, err := floorplan.DecodeList(strings.NewReader(src))
	require.NoError(t, err)

	targets, err := sl.Targets()
	require.NoError(t, err)
	assert.Equal(t, []floorplan.ShelfTarget{
		{ProductID: "milk", Location: floorplan.Point{X: 2, Y: 2}},
		{ProductID: "eggs", Location: floorplan.Point{X: 2, Y: 5}},
	}, targets)

	sl.Items = append(sl.Items, floorplan.Item{ProductID: "ghost"})
	_, err = sl.Targets()
	require.ErrorIs(t, err, floorplan.ErrMissingLocation)
	assert.Contains(t, err.Error(), "ghost")
}
