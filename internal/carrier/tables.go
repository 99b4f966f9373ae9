package carrier

var israel = Table{
	"050":  "Pelephone",
	"051":  "Xphone",
	"052":  "Cellcom",
	"053":  "Hot Mobile",
	"054":  "Partner",
	"0552": "Hot Mobile",
	"0555": "Rami Levy",
	"0556": "Rami Levy",
	"0558": "Pelephone",
	"058":  "Golan Telecom",
}

// NANP numbers carry no trunk digit and are freely ported; these are the
// original wireless block assignments for a few large markets.
var unitedStates = Table{
	"2012": "Verizon",
	"2013": "AT&T",
	"3124": "T-Mobile",
	"3125": "Sprint",
	"4043": "AT&T",
	"4044": "Verizon",
	"6465": "T-Mobile",
	"9173": "Verizon",
	"9175": "T-Mobile",
}

var unitedKingdom = Table{
	"0740": "O2",
	"0741": "Vodafone",
	"0743": "Three",
	"0744": "EE",
	"0745": "Three",
	"0746": "EE",
	"0747": "Three",
	"0748": "EE",
	"0749": "EE",
	"0750": "EE",
	"0751": "O2",
	"0752": "O2",
	"0753": "Vodafone",
	"0770": "O2",
	"0771": "O2",
	"0772": "O2",
	"0773": "O2",
	"0774": "Vodafone",
	"0775": "Vodafone",
	"0776": "Vodafone",
	"0777": "Vodafone",
	"0778": "Vodafone",
	"0779": "EE",
	"0780": "EE",
	"0781": "EE",
	"0782": "Three",
	"0783": "Three",
	"0784": "EE",
	"0785": "Vodafone",
	"0786": "O2",
	"0787": "Three",
	"0788": "Vodafone",
	"0789": "EE",
	"0790": "EE",
	"0791": "Vodafone",
	"0792": "O2",
	"0793": "EE",
	"0794": "EE",
	"0795": "EE",
	"0796": "O2",
	"0797": "EE",
	"0798": "Vodafone",
	"0799": "Vodafone",
}

var australia = Table{
	"0400": "Telstra",
	"0401": "Optus",
	"0402": "Optus",
	"0403": "Optus",
	"0404": "Vodafone",
	"0405": "Vodafone",
	"0406": "Vodafone",
	"0407": "Telstra",
	"0408": "Telstra",
	"0409": "Telstra",
	"0410": "Vodafone",
	"0411": "Optus",
	"0412": "Optus",
	"0413": "Optus",
	"0414": "Vodafone",
	"0415": "Vodafone",
	"0416": "Vodafone",
	"0417": "Telstra",
	"0418": "Telstra",
	"0419": "Telstra",
	"0420": "Telstra",
	"0421": "Optus",
	"0422": "Optus",
	"0423": "Optus",
	"0424": "Vodafone",
	"0425": "Vodafone",
	"0427": "Telstra",
	"0428": "Telstra",
	"0429": "Telstra",
	"0430": "Optus",
	"0431": "Optus",
	"0432": "Optus",
	"0437": "Telstra",
	"0438": "Telstra",
	"0439": "Telstra",
	"045":  "Telstra",
	"0466": "Optus",
	"0467": "Telstra",
	"0468": "Vodafone",
	"0470": "Vodafone",
	"0474": "Telstra",
	"0475": "Telstra",
	"0476": "Telstra",
	"0477": "Telstra",
	"0478": "Vodafone",
	"0481": "Optus",
	"0487": "Telstra",
	"0488": "Telstra",
	"0490": "Telstra",
	"0497": "Telstra",
	"0498": "Telstra",
	"0499": "Telstra",
}

var france = Table{
	"0601": "SFR",
	"0603": "SFR",
	"0605": "Orange",
	"0607": "Orange",
	"0608": "Orange",
	"0609": "SFR",
	"0610": "SFR",
	"0611": "SFR",
	"0612": "Orange",
	"0614": "SFR",
	"0615": "SFR",
	"0616": "SFR",
	"0617": "SFR",
	"0618": "Orange",
	"0619": "SFR",
	"0620": "SFR",
	"0630": "Orange",
	"0631": "Orange",
	"0632": "Orange",
	"0633": "Orange",
	"0642": "Orange",
	"0645": "Orange",
	"0650": "Bouygues",
	"0651": "Free Mobile",
	"0652": "Free Mobile",
	"0658": "Bouygues",
	"0659": "Bouygues",
	"066":  "Bouygues",
	"0670": "Orange",
	"0671": "Orange",
	"0672": "Orange",
	"0673": "Orange",
	"0674": "Orange",
	"0675": "Orange",
	"0676": "Orange",
	"0677": "Orange",
	"0678": "Orange",
	"0679": "Orange",
	"0680": "Orange",
	"0681": "Orange",
	"0682": "Orange",
	"0683": "Orange",
	"0684": "Orange",
	"0695": "Free Mobile",
	"0698": "Bouygues",
	"0699": "Bouygues",
	"0749": "Free Mobile",
	"0750": "Bouygues",
	"0751": "Bouygues",
	"0752": "Bouygues",
	"0753": "Bouygues",
	"0756": "SFR",
	"0757": "SFR",
	"0758": "SFR",
	"0767": "SFR",
	"0768": "SFR",
	"0769": "SFR",
	"0780": "Orange",
	"0781": "Orange",
	"0782": "Orange",
	"0783": "Orange",
	"0784": "Orange",
	"0785": "Orange",
	"0786": "Orange",
	"0787": "Orange",
	"0788": "Orange",
	"0789": "Orange",
}

var germany = Table{
	"0151": "Telekom",
	"0152": "Vodafone",
	"0155": "E-Plus",
	"0157": "E-Plus",
	"0159": "O2",
	"0160": "Telekom",
	"0162": "Vodafone",
	"0163": "E-Plus",
	"0170": "Telekom",
	"0171": "Telekom",
	"0172": "Vodafone",
	"0173": "Vodafone",
	"0174": "Vodafone",
	"0175": "Telekom",
	"0176": "O2",
	"0177": "E-Plus",
	"0178": "E-Plus",
	"0179": "O2",
}
