package httptransport

import "expvar"

var (
	metricRegisterTotal  = expvar.NewInt("player_register_total")
	metricRegisterErrors = expvar.NewInt("player_register_errors_total")

	metricRoundSubmitTotal  = expvar.NewInt("game_round_submit_total")
	metricRoundSubmitErrors = expvar.NewInt("game_round_submit_errors_total")

	metricTopupTotal = expvar.NewInt("admin_topup_total")
)
