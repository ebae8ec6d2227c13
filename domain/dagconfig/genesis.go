package dagconfig

import "github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"

// mainnetGenesisCycle is the 1992-entry Hamiltonian cycle solving mainnet's
// genesis block, taken verbatim from the original chain's hard-coded
// genesis construction: 1241 real vertices followed by sentinel padding.
var mainnetGenesisCycle = withSentinelPadding(externalapi.Cycle{
	0, 1, 2, 5, 3, 4, 7, 6, 9, 8, 10, 13, 11, 12, 15, 14, 17, 16, 18, 21,
	19, 20, 23, 22, 25, 24, 26, 29, 27, 28, 31, 30, 33, 32, 34, 37, 35, 36, 39, 38,
	41, 40, 42, 45, 43, 44, 47, 46, 49, 48, 50, 53, 51, 52, 55, 54, 57, 56, 58, 61,
	59, 60, 63, 62, 65, 64, 66, 69, 67, 68, 71, 70, 73, 72, 74, 77, 75, 76, 79, 78,
	81, 80, 82, 85, 83, 84, 87, 86, 89, 88, 90, 93, 91, 92, 95, 94, 97, 96, 98, 101,
	99, 100, 103, 102, 105, 104, 106, 109, 107, 108, 111, 110, 113, 112, 114, 117, 115, 116, 119, 118,
	121, 120, 122, 125, 123, 124, 127, 126, 129, 128, 130, 133, 131, 132, 135, 134, 137, 136, 138, 141,
	139, 140, 143, 142, 145, 144, 146, 149, 147, 148, 151, 150, 153, 152, 154, 157, 155, 156, 159, 158,
	161, 160, 162, 165, 163, 164, 167, 166, 169, 168, 170, 173, 171, 172, 175, 174, 177, 176, 178, 181,
	179, 180, 183, 182, 185, 184, 186, 189, 187, 188, 191, 190, 193, 192, 194, 197, 195, 196, 199, 198,
	201, 200, 202, 205, 203, 204, 207, 206, 209, 208, 210, 213, 211, 212, 215, 214, 217, 216, 218, 221,
	219, 220, 223, 222, 225, 224, 226, 229, 227, 228, 231, 230, 233, 232, 234, 237, 235, 236, 239, 238,
	241, 240, 242, 245, 243, 244, 247, 246, 249, 248, 250, 253, 251, 252, 255, 254, 257, 256, 258, 261,
	259, 260, 263, 262, 265, 264, 266, 269, 267, 268, 271, 270, 273, 272, 274, 277, 275, 276, 279, 278,
	281, 280, 282, 285, 283, 284, 287, 286, 289, 288, 290, 293, 291, 292, 295, 294, 297, 296, 298, 301,
	299, 300, 303, 302, 305, 304, 306, 309, 307, 308, 311, 310, 313, 312, 314, 317, 315, 316, 319, 318,
	321, 320, 322, 325, 323, 324, 327, 326, 329, 328, 330, 333, 331, 332, 335, 334, 337, 336, 338, 341,
	339, 340, 343, 342, 345, 344, 346, 349, 347, 348, 351, 350, 353, 352, 354, 357, 355, 356, 359, 358,
	361, 360, 362, 365, 363, 364, 367, 366, 369, 368, 370, 373, 371, 372, 375, 374, 377, 376, 378, 381,
	379, 380, 383, 382, 385, 384, 386, 389, 387, 388, 391, 390, 393, 392, 394, 397, 395, 396, 399, 398,
	401, 400, 402, 405, 403, 404, 407, 406, 409, 408, 410, 413, 411, 412, 415, 414, 417, 416, 418, 421,
	419, 420, 423, 422, 425, 424, 426, 429, 427, 428, 431, 430, 433, 432, 434, 437, 435, 436, 439, 438,
	441, 440, 442, 445, 443, 444, 447, 446, 449, 448, 450, 453, 451, 452, 455, 454, 457, 456, 458, 461,
	459, 460, 463, 462, 465, 464, 466, 469, 467, 468, 471, 470, 473, 472, 474, 477, 475, 476, 479, 478,
	481, 480, 482, 485, 483, 484, 487, 486, 489, 488, 490, 493, 491, 492, 495, 494, 497, 496, 498, 501,
	499, 500, 503, 502, 505, 504, 506, 509, 507, 508, 511, 510, 513, 512, 514, 517, 515, 516, 519, 518,
	521, 520, 522, 525, 523, 524, 527, 526, 529, 528, 530, 533, 531, 532, 535, 534, 537, 536, 538, 541,
	539, 540, 543, 542, 545, 544, 546, 549, 547, 548, 551, 550, 553, 552, 554, 557, 555, 556, 559, 558,
	561, 560, 562, 565, 563, 564, 567, 566, 569, 568, 570, 573, 571, 572, 575, 574, 577, 576, 578, 581,
	579, 580, 583, 582, 585, 584, 586, 589, 587, 588, 591, 590, 593, 592, 594, 597, 595, 596, 599, 598,
	601, 600, 602, 605, 603, 604, 607, 606, 609, 608, 610, 613, 611, 612, 615, 614, 617, 616, 618, 621,
	619, 620, 623, 622, 625, 624, 626, 629, 627, 628, 631, 630, 633, 632, 634, 637, 635, 636, 639, 638,
	641, 640, 642, 645, 643, 644, 647, 646, 649, 648, 650, 653, 651, 652, 655, 654, 657, 656, 658, 661,
	659, 660, 663, 662, 665, 664, 666, 669, 667, 668, 671, 670, 673, 672, 674, 677, 675, 676, 679, 678,
	681, 680, 682, 685, 683, 684, 687, 686, 689, 688, 690, 693, 691, 692, 695, 694, 697, 696, 698, 701,
	699, 700, 703, 702, 705, 704, 706, 709, 707, 708, 711, 710, 713, 712, 714, 717, 715, 716, 719, 718,
	721, 720, 722, 725, 723, 724, 727, 726, 729, 728, 730, 733, 731, 732, 735, 734, 737, 736, 738, 741,
	739, 740, 743, 742, 745, 744, 746, 749, 747, 748, 751, 750, 753, 752, 754, 757, 755, 756, 759, 758,
	761, 760, 762, 765, 763, 764, 767, 766, 769, 768, 770, 773, 771, 772, 775, 774, 777, 776, 778, 781,
	779, 780, 783, 782, 785, 784, 786, 789, 787, 788, 791, 790, 793, 792, 794, 797, 795, 796, 799, 798,
	801, 800, 802, 805, 803, 804, 807, 806, 809, 808, 810, 813, 811, 812, 815, 814, 817, 816, 818, 821,
	819, 820, 823, 822, 825, 824, 826, 829, 827, 828, 831, 830, 833, 832, 834, 837, 835, 836, 839, 838,
	841, 840, 842, 845, 843, 844, 847, 846, 849, 848, 850, 853, 851, 852, 855, 854, 857, 856, 858, 861,
	859, 860, 863, 862, 865, 864, 866, 869, 867, 868, 871, 870, 873, 872, 874, 877, 875, 876, 879, 878,
	881, 880, 882, 885, 883, 884, 887, 886, 889, 888, 890, 893, 891, 892, 895, 894, 897, 896, 898, 901,
	899, 900, 903, 902, 905, 904, 906, 909, 907, 908, 911, 910, 913, 912, 914, 917, 915, 916, 919, 918,
	921, 920, 922, 925, 923, 924, 927, 926, 929, 928, 930, 933, 931, 932, 935, 934, 937, 936, 938, 941,
	939, 940, 943, 942, 945, 944, 946, 949, 947, 948, 951, 950, 953, 952, 954, 957, 955, 956, 959, 958,
	961, 960, 962, 965, 963, 964, 967, 966, 969, 968, 970, 973, 971, 972, 975, 974, 977, 976, 978, 981,
	979, 980, 983, 982, 985, 984, 986, 989, 987, 988, 991, 990, 993, 992, 994, 997, 995, 996, 999, 998,
	1001, 1000, 1002, 1005, 1003, 1004, 1007, 1006, 1009, 1008, 1010, 1013, 1011, 1012, 1015, 1014, 1017, 1016, 1018, 1021,
	1019, 1020, 1023, 1022, 1025, 1024, 1026, 1029, 1027, 1028, 1031, 1030, 1033, 1032, 1034, 1037, 1035, 1036, 1039, 1038,
	1041, 1040, 1042, 1045, 1043, 1044, 1047, 1046, 1049, 1048, 1050, 1053, 1051, 1052, 1055, 1054, 1057, 1056, 1058, 1061,
	1059, 1060, 1063, 1062, 1065, 1064, 1066, 1069, 1067, 1068, 1071, 1070, 1073, 1072, 1074, 1077, 1075, 1076, 1079, 1078,
	1081, 1080, 1082, 1085, 1083, 1084, 1087, 1086, 1089, 1088, 1090, 1093, 1091, 1092, 1095, 1094, 1097, 1096, 1098, 1101,
	1099, 1100, 1103, 1102, 1105, 1104, 1106, 1109, 1107, 1108, 1111, 1110, 1113, 1112, 1114, 1117, 1115, 1116, 1119, 1118,
	1121, 1120, 1122, 1125, 1123, 1124, 1127, 1126, 1129, 1128, 1130, 1133, 1131, 1132, 1135, 1134, 1137, 1136, 1138, 1141,
	1139, 1140, 1143, 1142, 1145, 1144, 1146, 1149, 1147, 1148, 1151, 1150, 1153, 1152, 1154, 1157, 1155, 1156, 1159, 1158,
	1161, 1160, 1162, 1165, 1163, 1164, 1167, 1166, 1169, 1168, 1170, 1173, 1171, 1172, 1175, 1174, 1177, 1176, 1178, 1181,
	1179, 1180, 1183, 1182, 1185, 1184, 1186, 1189, 1187, 1188, 1191, 1190, 1193, 1192, 1194, 1197, 1195, 1196, 1199, 1198,
	1201, 1200, 1202, 1205, 1203, 1204, 1207, 1206, 1209, 1208, 1210, 1213, 1211, 1212, 1215, 1214, 1217, 1216, 1218, 1221,
	1219, 1220, 1223, 1222, 1225, 1224, 1226, 1229, 1227, 1228, 1231, 1230, 1233, 1232, 1234, 1237, 1236, 1240, 1235, 1238,
	1239, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
	65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
	65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
	65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
	65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
	65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
	65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
	65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
	65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
	65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
	65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
	65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
})

// withSentinelPadding sets every slot from the first sentinel onward to
// CycleSentinel, so slots a literal leaves unlisted are padding, not 0.
func withSentinelPadding(c externalapi.Cycle) externalapi.Cycle {
	for i := c.Length(); i < len(c); i++ {
		c[i] = externalapi.CycleSentinel
	}
	return c
}

// mainnetGenesisMerkleRoot is the merkle root asserted by the original
// chain's genesis construction for the mainnet genesis coinbase.
var mainnetGenesisMerkleRoot = newHashFromStr(
	"2a9f2576a15e81773726f78378842567276e3b43860290adfe30d113ca6cef76",
)

// mainnetGenesisHeader is the mainnet genesis block header: the earliest
// PoW variant (V1), time before TV2, carrying no RandomXMix field.
var mainnetGenesisHeader = externalapi.BlockHeader{
	Version:    1,
	PrevHash:   externalapi.DomainHash{},
	MerkleRoot: *mainnetGenesisMerkleRoot,
	Time:       1722343420,
	Bits:       0x1f7fffff,
	Nonce:      3146876148,
	Cycle:      mainnetGenesisCycle,
}

// otherGenesisHeader builds a genesis header for a non-main network. Its
// own proof of work is never checked -- ProcessNewBlock only validates the
// blocks built on top of a tip, never the tip itself -- so it carries the
// empty cycle rather than a solved one.
func otherGenesisHeader(t uint32, bits uint32) externalapi.BlockHeader {
	return externalapi.BlockHeader{
		Version:    1,
		PrevHash:   externalapi.DomainHash{},
		MerkleRoot: externalapi.DomainHash{},
		Time:       t,
		Bits:       bits,
		Cycle:      externalapi.EmptyCycle(),
	}
}

var testnetGenesisHeader = otherGenesisHeader(1722343420, 0x1f7fffff)
var signetGenesisHeader = otherGenesisHeader(1722343420, 0x1f7fffff)
var regtestGenesisHeader = otherGenesisHeader(1722343420, 0x207fffff)
