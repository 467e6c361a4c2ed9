package domain

// Nifty500Universe is the scannable NSE symbol list (NIFTY 50 plus a
// selection of Next-50 and midcap names). Symbols are NSE tickers without
// the exchange suffix.
var Nifty500Universe = []string{
	// NIFTY 50
	"RELIANCE", "TCS", "HDFCBANK", "INFY", "HINDUNILVR", "ICICIBANK", "KOTAKBANK",
	"SBIN", "BHARTIARTL", "BAJFINANCE", "ASIANPAINT", "ITC", "AXISBANK", "LT",
	"MARUTI", "SUNPHARMA", "TITAN", "ULTRACEMCO", "NESTLEIND", "WIPRO",
	"TATAMOTORS", "ADANIENT", "ONGC", "NTPC", "POWERGRID", "M&M", "BAJAJFINSV",
	"COALINDIA", "TECHM", "INDUSINDBK", "TATASTEEL", "HDFCLIFE", "SBILIFE",
	"GRASIM", "DIVISLAB", "BRITANNIA", "BAJAJ-AUTO", "CIPLA", "DRREDDY", "EICHERMOT",
	"HINDALCO", "APOLLOHOSP", "VEDL", "JSWSTEEL", "HEROMOTOCO", "ADANIPORTS", "TATACONSUM",
	"HCLTECH", "DMART", "PIDILITIND",

	// NIFTY Next 50
	"ADANIGREEN", "AMBUJACEM", "BANDHANBNK", "BERGEPAINT", "BOSCHLTD", "CHOLAFIN",
	"COLPAL", "DABUR", "DLF", "GODREJCP", "GAIL", "HAVELLS", "ICICIPRULI", "INDIGO",
	"JINDALSTEL", "LTIM", "MARICO", "MUTHOOTFIN", "NAUKRI", "NMDC", "ICICIGI",
	"OFSS", "PIIND", "PNB", "SBICARD", "SHREECEM", "SIEMENS", "SRF", "TATAPOWER",
	"TORNTPHARM", "TRENT", "TVSMOTOR", "UBL", "UPL", "VOLTAS", "ZYDUSLIFE",
	"ABB", "ACC", "ALKEM", "ASTRAL", "AUBANK", "AUROPHARMA", "BALKRISIND",
	"BANKBARODA", "BEL",

	// Midcap selection
	"APOLLOTYRE", "ASHOKLEY", "BHARATFORG", "BIOCON", "BPCL", "CANBK", "COFORGE",
	"CONCOR", "COROMANDEL", "CROMPTON", "CUMMINSIND", "DEEPAKNTR", "DIXON",
	"ESCORTS", "EXIDEIND", "FEDERALBNK", "GLENMARK", "GODREJPROP", "HAL",
	"HINDPETRO", "IDFCFIRSTB", "IEX", "IGL", "INDUSTOWER", "IOC", "IRCTC",
	"JUBLFOOD", "KPITTECH", "LAURUSLABS", "LICHSGFIN", "LUPIN", "MANAPPURAM",
	"MCX", "MPHASIS", "MRF", "NATIONALUM", "NHPC", "OBEROIRLTY", "OIL",
	"PAGEIND", "PERSISTENT", "PETRONET", "PFC", "POLYCAB", "RAMCOCEM",
	"RBLBANK", "RECLTD", "SAIL", "TATACHEM", "TATACOMM", "TATAELXSI",
	"THERMAX", "TORNTPOWER", "UNIONBANK", "VGUARD", "YESBANK", "ZEEL",
}

// SectorMapping maps an NSE symbol to its sector for filter support.
// Symbols absent from the map screen as "Other".
var SectorMapping = map[string]string{
	"RELIANCE": "Oil & Gas", "TCS": "IT", "HDFCBANK": "Banking", "INFY": "IT",
	"HINDUNILVR": "FMCG", "ICICIBANK": "Banking", "KOTAKBANK": "Banking",
	"SBIN": "Banking", "BHARTIARTL": "Telecom", "BAJFINANCE": "Financial Services",
	"ASIANPAINT": "Paints", "ITC": "FMCG", "AXISBANK": "Banking", "LT": "Infrastructure",
	"DMART": "Retail", "HCLTECH": "IT", "MARUTI": "Automobiles", "SUNPHARMA": "Pharmaceuticals",
	"TITAN": "Consumer Goods", "ULTRACEMCO": "Cement", "NESTLEIND": "FMCG",
	"WIPRO": "IT", "TATAMOTORS": "Automobiles", "ADANIENT": "Diversified",
	"ONGC": "Oil & Gas", "NTPC": "Power", "POWERGRID": "Power", "M&M": "Automobiles",
	"TECHM": "IT", "TATASTEEL": "Metals", "HINDALCO": "Metals", "JSWSTEEL": "Metals",
	"CIPLA": "Pharmaceuticals", "DRREDDY": "Pharmaceuticals", "DIVISLAB": "Pharmaceuticals",
	"BRITANNIA": "FMCG", "TATACONSUM": "FMCG", "COALINDIA": "Metals",
	"ADANIPORTS": "Infrastructure", "GAIL": "Oil & Gas", "BPCL": "Oil & Gas",
	"IOC": "Oil & Gas", "HINDPETRO": "Oil & Gas", "TATAPOWER": "Power",
	"EICHERMOT": "Automobiles", "HEROMOTOCO": "Automobiles", "TVSMOTOR": "Automobiles",
	"BAJAJ-AUTO": "Automobiles", "INDUSINDBK": "Banking", "BANKBARODA": "Banking",
	"PNB": "Banking", "FEDERALBNK": "Banking", "IDFCFIRSTB": "Banking",
	"SBILIFE": "Insurance", "HDFCLIFE": "Insurance", "ICICIGI": "Insurance",
	"ICICIPRULI": "Insurance", "SBICARD": "Financial Services",
	"CHOLAFIN": "Financial Services", "MUTHOOTFIN": "Financial Services",
	"LTIM": "IT", "COFORGE": "IT", "MPHASIS": "IT", "PERSISTENT": "IT",
	"KPITTECH": "IT", "TATAELXSI": "IT", "OFSS": "IT",
	"ACC": "Cement", "AMBUJACEM": "Cement", "SHREECEM": "Cement", "RAMCOCEM": "Cement",
	"GRASIM": "Cement", "DABUR": "FMCG", "MARICO": "FMCG", "GODREJCP": "FMCG",
	"COLPAL": "FMCG", "UBL": "FMCG", "PIDILITIND": "Chemicals", "SRF": "Chemicals",
	"UPL": "Chemicals", "TATACHEM": "Chemicals", "DEEPAKNTR": "Chemicals",
	"AUROPHARMA": "Pharmaceuticals", "LUPIN": "Pharmaceuticals", "BIOCON": "Pharmaceuticals",
	"ALKEM": "Pharmaceuticals", "TORNTPHARM": "Pharmaceuticals", "GLENMARK": "Pharmaceuticals",
	"LAURUSLABS": "Pharmaceuticals", "ZYDUSLIFE": "Pharmaceuticals",
	"APOLLOHOSP": "Healthcare", "TRENT": "Retail", "JUBLFOOD": "Retail",
	"DLF": "Real Estate", "GODREJPROP": "Real Estate", "OBEROIRLTY": "Real Estate",
	"SIEMENS": "Capital Goods", "ABB": "Capital Goods", "CUMMINSIND": "Capital Goods",
	"THERMAX": "Capital Goods", "HAL": "Defence", "BEL": "Defence",
	"BHARATFORG": "Auto Components", "BALKRISIND": "Auto Components",
	"APOLLOTYRE": "Auto Components", "EXIDEIND": "Auto Components", "MRF": "Auto Components",
	"PFC": "Financial Services", "RECLTD": "Financial Services",
	"NHPC": "Power", "TORNTPOWER": "Power", "SAIL": "Metals", "NMDC": "Metals",
	"NATIONALUM": "Metals", "JINDALSTEL": "Metals", "VEDL": "Metals",
	"INDIGO": "Aviation", "IRCTC": "Travel", "NAUKRI": "Internet", "ZEEL": "Media",
	"TATACOMM": "Telecom", "INDUSTOWER": "Telecom", "IEX": "Financial Services",
	"MCX": "Financial Services", "PETRONET": "Oil & Gas", "IGL": "Oil & Gas",
	"OIL": "Oil & Gas", "HAVELLS": "Consumer Durables", "VOLTAS": "Consumer Durables",
	"CROMPTON": "Consumer Durables", "DIXON": "Consumer Durables",
	"VGUARD": "Consumer Durables", "POLYCAB": "Capital Goods",
	"BERGEPAINT": "Paints", "ASTRAL": "Plastics", "PAGEIND": "Textiles",
}

// SectorOf returns the sector for a symbol, defaulting to "Other".
func SectorOf(symbol string) string {
	if s, ok := SectorMapping[symbol]; ok {
		return s
	}
	return "Other"
}
