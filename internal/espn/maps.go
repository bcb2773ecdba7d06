package espn

// ID tables for the fantasy v3 API. The stat ids mirror ESPN's football
// scoring categories; ids missing from the table pass through numerically.

var proTeamNames = map[int]string{
	0:  "None",
	1:  "ATL",
	2:  "BUF",
	3:  "CHI",
	4:  "CIN",
	5:  "CLE",
	6:  "DAL",
	7:  "DEN",
	8:  "DET",
	9:  "GB",
	10: "TEN",
	11: "IND",
	12: "KC",
	13: "LV",
	14: "LAR",
	15: "MIA",
	16: "MIN",
	17: "NE",
	18: "NO",
	19: "NYG",
	20: "NYJ",
	21: "PHI",
	22: "ARI",
	23: "PIT",
	24: "LAC",
	25: "SF",
	26: "SEA",
	27: "TB",
	28: "WSH",
	29: "CAR",
	30: "JAX",
	33: "BAL",
	34: "HOU",
}

var positionNames = map[int]string{
	1:  "QB",
	2:  "RB",
	3:  "WR",
	4:  "TE",
	5:  "K",
	16: "D/ST",
}

var statNames = map[string]string{
	"0":  "passingAttempts",
	"1":  "passingCompletions",
	"2":  "passingIncompletions",
	"3":  "passingYards",
	"4":  "passingTouchdowns",
	"19": "passing2PtConversions",
	"20": "passingInterceptions",

	"23": "rushingAttempts",
	"24": "rushingYards",
	"25": "rushingTouchdowns",
	"26": "rushing2PtConversions",
	"39": "rushingYardsPerAttempt",

	"42": "receivingYards",
	"43": "receivingTouchdowns",
	"44": "receiving2PtConversions",
	"53": "receivingReceptions",
	"58": "receivingTargets",
	"59": "receivingYardsAfterCatch",
	"60": "receivingYardsPerReception",

	"68": "fumbles",
	"72": "lostFumbles",

	"74": "madeFieldGoalsFrom50Plus",
	"77": "madeFieldGoalsFrom40To49",
	"80": "madeFieldGoalsFromUnder40",
	"83": "madeFieldGoals",
	"84": "attemptedFieldGoals",
	"85": "missedFieldGoals",
	"86": "madeExtraPoints",
	"87": "attemptedExtraPoints",
	"88": "missedExtraPoints",

	"89":  "defensive0PointsAllowed",
	"90":  "defensive1To6PointsAllowed",
	"91":  "defensive7To13PointsAllowed",
	"92":  "defensive14To17PointsAllowed",
	"93":  "defensiveBlockedKickForTouchdowns",
	"95":  "defensiveInterceptions",
	"96":  "defensiveFumbles",
	"97":  "defensiveBlockedKicks",
	"98":  "defensiveSafeties",
	"99":  "defensiveSacks",
	"103": "kickoffReturnTouchdowns",
	"104": "puntReturnTouchdowns",
	"105": "defensiveTouchdowns",
	"106": "defensiveForcedFumbles",
	"107": "defensiveAssistedTackles",
	"108": "defensiveSoloTackles",
	"109": "defensiveTotalTackles",
}

func ProTeamName(id int) string {
	if n, ok := proTeamNames[id]; ok {
		return n
	}
	return "None"
}

func PositionName(id int) string {
	if n, ok := positionNames[id]; ok {
		return n
	}
	return "UNKNOWN"
}
