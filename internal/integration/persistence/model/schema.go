package model

// All returns every model of the schema, in migration order.
func All() []any {
	return []any{
		&FixedCostModel{},
		&OverrideModel{},
		&TransactionModel{},
		&SimulationModel{},
		&CategoryRuleModel{},
		&BalanceSnapshotModel{},
	}
}
