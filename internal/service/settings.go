package service

import (
	"fmt"
	"strings"

	"github.com/TonyOlaCodes/tracker/internal/model"
	"github.com/TonyOlaCodes/tracker/internal/store"
)

func GetSettings(st *store.Store) (model.Settings, error) {
	state, err := st.Load()
	if err != nil {
		return model.Settings{}, err
	}
	return state.Settings, nil
}

func SetCurrency(st *store.Store, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return fmt.Errorf("currency code must be 3 letters, got %q", code)
	}
	state, err := st.Load()
	if err != nil {
		return err
	}
	state.Settings.Currency = code
	return st.Save(state)
}

// SetWeightUnit switches between lbs and kg and keeps the weight metric
// type's unit label in step.
func SetWeightUnit(st *store.Store, unit string) error {
	unit = strings.ToLower(strings.TrimSpace(unit))
	if unit != "lbs" && unit != "kg" {
		return fmt.Errorf("weight unit must be lbs or kg, got %q", unit)
	}
	state, err := st.Load()
	if err != nil {
		return err
	}
	state.Settings.WeightUnit = unit
	if mt, ok := state.MetricTypes["weight"]; ok {
		mt.Unit = unit
		state.MetricTypes["weight"] = mt
	}
	return st.Save(state)
}
