package pe

// Indexed by the rich header ProductId.
var richProductNames = []string{
	"Import (old)",
	"Import",
	"Linker510",
	"Cvtomf510",
	"Linker600",
	"Cvtomf600",
	"Cvtres500",
	"Utc11_Basic",
	"Utc11_C",
	"Utc12_Basic",
	"Utc12_C",
	"Utc12_CPP",
	"AliasObj60",
	"VisualBasic60",
	"Masm613",
	"Masm710",
	"Linker511",
	"Cvtomf511",
	"Masm614",
	"Linker512",
	"Cvtomf512",
	"Utc12_C_Std",
	"Utc12_CPP_Std",
	"Utc12_C_Book",
	"Utc12_CPP_Book",
	"Implib700",
	"Cvtomf700",
	"Utc13_Basic",
	"Utc13_C",
	"Utc13_CPP",
	"Linker610",
	"Cvtomf610",
	"Linker601",
	"Cvtomf601",
	"Utc12_1_Basic",
	"Utc12_1_C",
	"Utc12_1_CPP",
	"Linker620",
	"Cvtomf620",
	"AliasObj70",
	"Linker621",
	"Cvtomf621",
	"Masm615",
	"Utc13_LTCG_C",
	"Utc13_LTCG_CPP",
	"Masm620",
	"ILAsm100",
	"Utc12_2_Basic",
	"Utc12_2_C",
	"Utc12_2_CPP",
	"Utc12_2_C_Std",
	"Utc12_2_CPP_Std",
	"Utc12_2_C_Book",
	"Utc12_2_CPP_Book",
	"Implib622",
	"Cvtomf622",
	"Cvtres501",
	"Utc13_C_Std",
	"Utc13_CPP_Std",
	"Cvtpgd1300",
	"Linker622",
	"Linker700",
	"Export622",
	"Export700",
	"Masm700",
	"Utc13_POGO_I_C",
	"Utc13_POGO_I_CPP",
	"Utc13_POGO_O_C",
	"Utc13_POGO_O_CPP",
	"Cvtres700",
	"Cvtres710p",
	"Linker710p",
	"Cvtomf710p",
	"Export710p",
	"Implib710p",
	"Masm710p",
	"Utc1310p_C",
	"Utc1310p_CPP",
	"Utc1310p_C_Std",
	"Utc1310p_CPP_Std",
	"Utc1310p_LTCG_C",
	"Utc1310p_LTCG_CPP",
	"Utc1310p_POGO_I_C",
	"Utc1310p_POGO_I_CPP",
	"Utc1310p_POGO_O_C",
	"Utc1310p_POGO_O_CPP",
	"Linker624",
	"Cvtomf624",
	"Export624",
	"Implib624",
	"Linker710",
	"Cvtomf710",
	"Export710",
	"Implib710",
	"Cvtres710",
	"Utc1310_C",
	"Utc1310_CPP",
	"Utc1310_C_Std",
	"Utc1310_CPP_Std",
	"Utc1310_LTCG_C",
	"Utc1310_LTCG_CPP",
	"Utc1310_POGO_I_C",
	"Utc1310_POGO_I_CPP",
	"Utc1310_POGO_O_C",
	"Utc1310_POGO_O_CPP",
	"AliasObj710",
	"AliasObj710p",
	"Cvtpgd1310",
	"Cvtpgd1310p",
	"Utc1400_C",
	"Utc1400_CPP",
	"Utc1400_C_Std",
	"Utc1400_CPP_Std",
	"Utc1400_LTCG_C",
	"Utc1400_LTCG_CPP",
	"Utc1400_POGO_I_C",
	"Utc1400_POGO_I_CPP",
	"Utc1400_POGO_O_C",
	"Utc1400_POGO_O_CPP",
	"Cvtpgd1400",
	"Linker800",
	"Cvtomf800",
	"Export800",
	"Implib800",
	"Cvtres800",
	"Masm800",
	"AliasObj800",
	"PhoenixPrerelease",
	"Utc1400_CVTCIL_C",
	"Utc1400_CVTCIL_CPP",
	"Utc1400_LTCG_MSIL",
	"Utc1500_C",
	"Utc1500_CPP",
	"Utc1500_C_Std",
	"Utc1500_CPP_Std",
	"Utc1500_CVTCIL_C",
	"Utc1500_CVTCIL_CPP",
	"Utc1500_LTCG_C",
	"Utc1500_LTCG_CPP",
	"Utc1500_LTCG_MSIL",
	"Utc1500_POGO_I_C",
	"Utc1500_POGO_I_CPP",
	"Utc1500_POGO_O_C",
	"Utc1500_POGO_O_CPP",
	"Cvtpgd1500",
	"Linker900",
	"Export900",
	"Implib900",
	"Cvtres900",
	"Masm900",
	"AliasObj900",
	"Resource",
	"AliasObj1000",
	"Cvtpgd1600",
	"Cvtres1000",
	"Export1000",
	"Implib1000",
	"Linker1000",
	"Masm1000",
	"Phx1600_C",
	"Phx1600_CPP",
	"Phx1600_CVTCIL_C",
	"Phx1600_CVTCIL_CPP",
	"Phx1600_LTCG_C",
	"Phx1600_LTCG_CPP",
	"Phx1600_LTCG_MSIL",
	"Phx1600_POGO_I_C",
	"Phx1600_POGO_I_CPP",
	"Phx1600_POGO_O_C",
	"Phx1600_POGO_O_CPP",
	"Utc1600_C",
	"Utc1600_CPP",
	"Utc1600_CVTCIL_C",
	"Utc1600_CVTCIL_CPP",
	"Utc1600_LTCG_C",
	"Utc1600_LTCG_CPP",
	"Utc1600_LTCG_MSIL",
	"Utc1600_POGO_I_C",
	"Utc1600_POGO_I_CPP",
	"Utc1600_POGO_O_C",
	"Utc1600_POGO_O_CPP",
	"AliasObj1010",
	"Cvtpgd1610",
	"Cvtres1010",
	"Export1010",
	"Implib1010",
	"Linker1010",
	"Masm1010",
	"Utc1610_C",
	"Utc1610_CPP",
	"Utc1610_CVTCIL_C",
	"Utc1610_CVTCIL_CPP",
	"Utc1610_LTCG_C",
	"Utc1610_LTCG_CPP",
	"Utc1610_LTCG_MSIL",
	"Utc1610_POGO_I_C",
	"Utc1610_POGO_I_CPP",
	"Utc1610_POGO_O_C",
	"Utc1610_POGO_O_CPP",
	"AliasObj1100",
	"Cvtpgd1700",
	"Cvtres1100",
	"Export1100",
	"Implib1100",
	"Linker1100",
	"Masm1100",
	"Utc1700_C",
	"Utc1700_CPP",
	"Utc1700_CVTCIL_C",
	"Utc1700_CVTCIL_CPP",
	"Utc1700_LTCG_C",
	"Utc1700_LTCG_CPP",
	"Utc1700_LTCG_MSIL",
	"Utc1700_POGO_I_C",
	"Utc1700_POGO_I_CPP",
	"Utc1700_POGO_O_C",
	"Utc1700_POGO_O_CPP",
	"AliasObj1200",
	"Cvtpgd1800",
	"Cvtres1200",
	"Export1200",
	"Implib1200",
	"Linker1200",
	"Masm1200",
	"Utc1800_C",
	"Utc1800_CPP",
	"Utc1800_CVTCIL_C",
	"Utc1800_CVTCIL_CPP",
	"Utc1800_LTCG_C",
	"Utc1800_LTCG_CPP",
	"Utc1800_LTCG_MSIL",
	"Utc1800_POGO_I_C",
	"Utc1800_POGO_I_CPP",
	"Utc1800_POGO_O_C",
	"Utc1800_POGO_O_CPP",
	"AliasObj1210",
	"Cvtpgd1810",
	"Cvtres1210",
	"Export1210",
	"Implib1210",
	"Linker1210",
	"Masm1210",
	"Utc1810_C",
	"Utc1810_CPP",
	"Utc1810_CVTCIL_C",
	"Utc1810_CVTCIL_CPP",
	"Utc1810_LTCG_C",
	"Utc1810_LTCG_CPP",
	"Utc1810_LTCG_MSIL",
	"Utc1810_POGO_I_C",
	"Utc1810_POGO_I_CPP",
	"Utc1810_POGO_O_C",
	"Utc1810_POGO_O_CPP",
	"AliasObj1400",
	"Cvtpgd1900",
	"Cvtres1400",
	"Export1400",
	"Implib1400",
	"Linker1400",
	"Masm1400",
	"Utc1900_C",
	"Utc1900_CPP",
	"Utc1900_CVTCIL_C",
	"Utc1900_CVTCIL_CPP",
	"Utc1900_LTCG_C",
	"Utc1900_LTCG_CPP",
	"Utc1900_LTCG_MSIL",
	"Utc1900_POGO_I_C",
	"Utc1900_POGO_I_CPP",
	"Utc1900_POGO_O_C",
	"Utc1900_POGO_O_CPP",
}

// Indexed by visualStudioBuild.name_index.
var visualStudioNames = []string{
	".NET Framework",
	".NET Core",
	"Visual Studio 5.0 CvtRes.exe",
	"Visual C++ 5.0",
	"Visual Studio 6.0",
	"Visual Basic 6.0",
	"Visual C++ 6.0",
	"Visual Studio 6.0 MASM",
	"Visual C++ 2002",
	"Visual C++ 2003",
	"Visual Studio 2005",
	"Visual Studio 2008",
	"Visual Studio 2010",
	"Visual C++ 2012",
	"Visual Studio 2012 MASM",
	"Visual C++ 2013",
	"Visual Studio 2013",
	"Visual C++ 2015",
	"Visual Studio 2015",
	"Visual C++ 2017",
	"Visual Studio 2017",
	"Visual C++ 2019",
	"Visual Studio 2019",
}

// Coarse names used when the build number is not known, indexed by
// the position of the ProductId in richProductIdRanges.
var visualStudioRangeNames = []string{
	"Visual Studio 2003 v7.10",
	"Visual Studio 2005 v8.0",
	"Visual Studio 2008 v9.0",
	"",
	"Visual Studio 2010 v10.0",
	"Visual Studio 2010 v10.10",
	"Visual Studio 2012 v11.0",
	"Visual Studio 2013 v12.0",
	"Visual Studio 2013 v12.10",
	"Visual Studio 2015+",
}

// Ascending ProductId thresholds for the ranges above.
var richProductIdRanges = []uint16{
	0x5A, 0x6D, 0x83, 0x97, 0x98, 0xB5, 0xC7, 0xD9, 0xEB, 0xFD,
}

type visualStudioBuild struct {
	name_index int
	version    string
}

// Build number -> Visual Studio release.
var visualStudioBuilds = map[uint16]visualStudioBuild{
	2204:  {0, "1.0 beta 1"},
	2914:  {0, "1.0 beta 2"},
	3512:  {0, "1.0 RC3"},
	3705:  {0, "1.0"},
	4322:  {0, "1.1"},
	21213: {0, "1.2 pre-alpha"},
	30703: {0, "1.2 alpha"},
	40301: {0, "2.0"},
	40426: {0, "2.0"},
	40607: {0, "2.0"},
	40903: {0, "2.0"},
	41115: {0, "2.0"},
	50110: {0, "2.0"},
	50215: {0, "2.0"},
	50601: {0, "2.0"},
	50710: {0, "4.5"},
	50932: {0, "4.5.1"},
	50938: {0, "4.5.1"},
	51090: {0, "4.5.2"},
	51209: {0, "4.5.2"},
	51641: {0, "4.5.1"},
	51651: {0, "4.5.2"},
	1055:  {0, "4.6"},
	23902: {1, "5.0"},
	1668:  {2, "5.0"},
	1720:  {2, "5.0"},
	1735:  {2, "5.0"},
	1803:  {2, "5.0"},
	2080:  {2, "5.0"},
	2090:  {2, "5.0"},
	7008:  {3, "5.0"},
	7022:  {3, "5.0 SP0"},
	7132:  {3, "5.2 SP1"},
	7274:  {3, "5.10 SP3"},
	7303:  {3, "5.10 SP3"},
	8022:  {3, "5.12"},
	8034:  {3, "5.12"},
	8078:  {3, "5.12"},
	8124:  {3, "5.12"},
	8152:  {3, "5.12"},
	9049:  {3, "5.12"},
	7291:  {4, "6.0"},
	8041:  {5, "5.0"},
	8047:  {6, "6.0"},
	8167:  {4, "6.0"},
	8168:  {4, "6.0"},
	8169:  {4, "6.0"},
	8349:  {6, "6.0"},
	8350:  {6, "6.0"},
	8397:  {6, "6.0"},
	8447:  {6, "6.0 SP3"},
	8495:  {4, "6.0 SP3"},
	8569:  {6, "6.0 SP3"},
	8755:  {6, "6.0 SP3"},
	8769:  {6, "6.0 SP3"},
	8783:  {5, "5.0"},
	8797:  {6, "6.0 SP4"},
	8798:  {6, "6.0 SP4"},
	8799:  {6, "6.0 SP4"},
	8804:  {6, "6.0 SP4"},
	8877:  {4, "6.0 SP4"},
	8943:  {6, "6.0 SP5 Processor Pack"},
	8964:  {4, "6.0 SP5"},
	8966:  {6, "6.0 SP5"},
	9044:  {6, "6.0 SP5 Processor Pack"},
	9738:  {4, "6.0 SP6"},
	9782:  {4, "6.0 SP6"},
	7299:  {7, "6.13 SP1"},
	8444:  {7, "6.14 SP3"},
	8803:  {7, "6.15 SP4"},
	8905:  {7, "6.15 SP4"},
	8491:  {8, "7.0"},
	8800:  {8, "7.0"},
	8830:  {8, "7.0"},
	9030:  {8, "7.0 beta 1"},
	9037:  {8, "7.0"},
	9043:  {8, "7.0"},
	9111:  {8, "7.0"},
	9162:  {8, "7.0"},
	9177:  {8, "7.0"},
	9178:  {8, "7.0"},
	9210:  {8, "7.0 XP DDK"},
	9254:  {8, "7.0 beta 2"},
	9372:  {8, "7.0 RC1"},
	9466:  {8, "7.0"},
	9955:  {8, "7.0 SP1"},
	2035:  {9, "7.10 beta"},
	2067:  {9, "7.10 beta"},
	2179:  {9, "7.10"},
	2190:  {9, "7.10"},
	2197:  {9, "7.10"},
	2241:  {9, "7.10"},
	3052:  {9, "7.10 Free Toolkit"},
	3077:  {9, "7.10"},
	3088:  {9, "7.10"},
	3310:  {9, "7.10"},
	4017:  {9, "7.10"},
	4031:  {9, "7.10 SDK"},
	4035:  {9, "7.10 SDK"},
	6030:  {9, "7.10 SP1"},
	6101:  {9, "7.10 SP1"},
	30120: {10, "8.0"},
	30701: {10, "8.0"},
	31008: {10, "8.0"},
	40310: {10, "8.0 SDK"},
	41204: {10, "8.0"},
	50327: {10, "8.0"},
	50608: {10, "8.0"},
	50706: {10, "8.0"},
	50727: {10, "8.0"},
	60516: {10, "8.0"},
	61001: {10, "8.0 SP1 MFC Update"},
	20413: {11, "9.0"},
	21022: {11, "9.0"},
	30718: {11, "9.0"},
	30729: {11, "9.0"},
	20115: {12, "10.0"},
	21202: {12, "10.0"},
	30311: {12, "10.0"},
	30314: {12, "10.0"},
	30319: {12, "10.0"},
	30414: {12, "10.0"},
	30716: {12, "10.10 SP1"},
	31118: {12, "10.10 SP1"},
	40219: {12, "10.10 SP1"},
	41118: {13, "11.0"},
	50307: {13, "11.0"},
	50323: {13, "11.0"},
	50413: {13, "11.0"},
	50522: {13, "11.0"},
	50425: {13, "11.0"},
	50503: {13, "11.0"},
	50531: {13, "11.0"},
	50612: {13, "11.0"},
	50628: {13, "11.0"},
	50709: {13, "11.0"},
	50722: {13, "11.0"},
	50929: {13, "11.0"},
	51016: {13, "11.0"},
	51020: {13, "11.0.1"},
	51106: {13, "11.0.1"},
	51114: {13, "11.0.2"},
	51204: {13, "11.0.2"},
	60610: {13, "11.0.3"},
	60930: {14, "11.0"},
	60315: {13, "11.0.2"},
	61030: {13, "11.0.4"},
	61219: {13, "11.0.5"},
	61232: {13, "11.0"},
	65500: {13, "11.0"},
	65501: {13, "11.0"},
	20322: {15, "12.0"},
	20403: {15, "12.0"},
	20501: {15, "12.0"},
	20617: {15, "12.0"},
	20806: {15, "12.0"},
	21005: {15, "12.0 RTM"},
	30102: {15, "12.10"},
	40115: {15, "12.10"},
	40116: {15, "12.10"},
	40649: {15, "12.0"},
	40660: {15, "12.0"},
	40664: {15, "12.0"},
	30110: {16, "12.0.1"},
	30324: {16, "12.0.2"},
	30501: {16, "12.0.2"},
	30723: {16, "12.0.3"},
	31101: {16, "12.0.4"},
	40629: {16, "12.0.5"},
	23007: {17, "14.0"},
	23013: {17, "14.0"},
	23026: {17, "14.0"},
	23406: {17, "14.0"},
	23524: {17, "14.0"},
	23615: {17, "14.0"},
	23506: {17, "14.0.1"},
	23907: {17, "14.0.1"},
	23917: {17, "14.0 preview 2"},
	23918: {17, "14.0.2"},
	23927: {17, "14.0.2"},
	24123: {17, "14.0.3 RC"},
	24210: {17, "14.0.3"},
	24212: {17, "14.0.3.b"},
	24213: {17, "14.0.3.d"},
	24215: {17, "14.0.3.d"},
	24218: {17, "14.0.3.d"},
	24225: {17, "14.0.3.d"},
	24231: {17, "14.0.3.d"},
	24233: {17, "14.0.3.d"},
	24234: {17, "14.0.3.d"},
	24406: {17, "14.0 preview 4"},
	24425: {17, "14.0 TFS Test VMs"},
	22823: {18, "14.0 RC"},
	23107: {18, "14.0"},
	24019: {18, "14.0"},
	24116: {18, "14.0"},
	24325: {18, "14.0"},
	24610: {18, "14.0"},
	24720: {18, "14.0.1"},
	24723: {18, "14.0.1.a"},
	24728: {18, "14.0.1.b"},
	24730: {18, "14.0.1.c"},
	25025: {18, "14.0"},
	25123: {18, "14.0.2"},
	25125: {18, "14.0.2"},
	25126: {18, "14.0.2.a"},
	25130: {18, "14.0.2.b"},
	25131: {18, "14.0.2.b"},
	25132: {18, "14.0.2.c"},
	25203: {18, "14.0"},
	25224: {18, "14.0"},
	25305: {18, "14.0"},
	25420: {18, "14.0.3"},
	25421: {18, "14.0.3"},
	25422: {18, "14.0.3.a"},
	25424: {18, "14.0.3.b"},
	25425: {18, "14.0.3.c"},
	25431: {18, "14.0.3.d"},
	24629: {19, "14.10 RC"},
	25008: {19, "14.10"},
	25017: {19, "14.10"},
	25019: {19, "14.10"},
	25508: {19, "14.11"},
	25547: {19, "14.11"},
	25711: {19, "14.12"},
	26128: {19, "14.12"},
	26131: {19, "14.13"},
	26213: {19, "14.13"},
	26706: {19, "14.15"},
	26715: {19, "14.15"},
	26726: {19, "14.15"},
	27023: {19, "14.16"},
	27024: {19, "14.16"},
	27026: {19, "14.16"},
	27027: {19, "14.16"},
	27030: {19, "14.16"},
	27031: {19, "14.16"},
	27034: {19, "14.16"},
	26304: {20, "15.0.0 preview 1"},
	26501: {20, "15.0 Office tools"},
	26504: {20, "15.0"},
	26315: {20, "15.0.0 preview 2"},
	26323: {20, "15.0.0 preview 3"},
	26228: {20, "15.0.x"},
	26403: {20, "15.1.x"},
	26412: {20, "15.2.0 preview 1"},
	26419: {20, "15.2.0 preview 2"},
	26424: {20, "15.2.0 preview 3"},
	26430: {20, "15.2.x"},
	26507: {20, "15.3.0 preview 1"},
	26510: {20, "15.3.0 preview 1.1"},
	26606: {20, "15.3.0 preview 2"},
	26608: {20, "15.3.0 preview 2.1"},
	26621: {20, "15.3.0 preview 3"},
	26711: {20, "15.3.0 preview 4"},
	26720: {20, "15.3.0 preview 5"},
	26724: {20, "15.3.0 preview 6"},
	26730: {20, "15.3.x"},
	26732: {20, "15.3.x"},
	26823: {20, "15.4.0 preview 1"},
	26906: {20, "15.4.0 preview 2"},
	26923: {20, "15.4.0 preview 3"},
	26929: {20, "15.4.0 preview 4"},
	27004: {20, "15.4.x"},
	27009: {20, "15.5.0 preview 1"},
	27019: {20, "15.5.0 preview 2"},
	27102: {20, "15.5.0 preview 3"},
	27110: {20, "15.5.0 preview 4"},
	27128: {20, "15.5.0 preview 5"},
	27130: {20, "15.5.x"},
	27205: {20, "15.6.0 preview 1"},
	27207: {20, "15.0 MSI tools"},
	27309: {20, "15.6.0 preview 2"},
	27323: {20, "15.6.0 preview 3"},
	27406: {20, "15.6.0 preview 4"},
	27413: {20, "15.6.0 preview 5"},
	27421: {20, "15.6.0 preview 6"},
	27428: {20, "15.6.x"},
	27512: {20, "15.7.0 preview 1"},
	27520: {20, "15.7.0 preview 2"},
	27604: {20, "15.7.0 preview 3"},
	27617: {20, "15.7.0 preview 4"},
	27625: {20, "15.7.0 preview 5"},
	27701: {20, "15.7.0 preview 6"},
	27703: {20, "15.7.x"},
	27705: {20, "15.8.0 preview 1"},
	27729: {20, "15.8.0 preview 2"},
	27825: {20, "15.8.0 preview 3"},
	27906: {20, "15.8.0 preview 4"},
	27924: {20, "15.8.0 preview 5"},
	28010: {20, "15.8.x"},
	28016: {20, "15.9.0 preview 1"},
	28107: {20, "15.9.0 preview 2"},
	28128: {20, "15.9.0 preview 3"},
	28219: {20, "15.9.0 preview 4"},
	28302: {20, "15.9.0 preview 5"},
	28307: {20, "15.9.x"},
	27706: {21, "14.22"},
	27724: {21, "14.22"},
	27807: {21, "14.22"},
	27812: {21, "14.22"},
	27821: {21, "14.22"},
	27905: {21, "14.22"},
	28117: {21, "14.24"},
	28329: {22, "16.0.0 preview 1"},
	28408: {22, "16.0.0 preview 1.1"},
	28522: {22, "16.0.0 preview 2"},
	28529: {22, "16.0.0 preview 2.1"},
	28602: {22, "16.0.0 preview 2.2"},
	28608: {22, "16.0.0 preview 3"},
	28625: {22, "16.0.0 preview 4"},
	28701: {22, "16.0.0 preview 4.1"},
	28705: {22, "16.0.0 preview 4.1.1"},
	28711: {22, "16.0.0 preview 4.2"},
	28714: {22, "16.0.0 preview 4.3"},
	28721: {22, "16.0.0 preview 4.4"},
	28729: {22, "16.0.0"},
	28803: {22, "16.0.x"},
	28809: {22, "16.1.0 preview 1"},
	28822: {22, "16.1.0 preview 2"},
	28902: {22, "16.1.0 preview 3"},
	28917: {22, "16.1.0"},
	28922: {22, "16.1.1"},
	29001: {22, "16.1.2"},
	29009: {22, "16.1.3"},
	29020: {22, "16.1.4"},
	29025: {22, "16.1.5"},
	29102: {22, "16.1.6"},
	29006: {22, "16.2.0 preview 2"},
	29021: {22, "16.2.0 preview 3"},
	29111: {22, "16.2.0 preview 4"},
	29123: {22, "16.2.0"},
	29201: {22, "16.2.1"},
	29209: {22, "16.2.2"},
	29215: {22, "16.2.3"},
	29230: {22, "16.2.4"},
	29306: {22, "16.2.5"},
	29311: {22, "16.3.0 preview 4"},
	29318: {22, "16.3.0"},
	29324: {22, "16.3.1"},
	29326: {22, "16.3.2"},
	29403: {22, "16.3.3"},
	29409: {22, "16.3.4"},
	29411: {22, "16.3.5"},
	29418: {22, "16.3.6"},
	29424: {22, "16.3.7"},
	29503: {22, "16.3.8"},
	29509: {22, "16.3.9"},
	29319: {22, "16.4.0 preview 1"},
	29430: {22, "16.4.0 preview 3"},
	29505: {22, "16.4.0 preview 4"},
	29512: {22, "16.4.0 preview 5"},
	29519: {22, "16.4.0"},
	29609: {22, "16.4.1"},
	29521: {22, "16.5.0 preview 1"},
}
