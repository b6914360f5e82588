package catalog

import "dailylect/internal/models"

// Bundled word bank for the six supported Philippine dialects. Static
// reference data only; user state never touches this package.

var dialectData = []models.Dialect{
	{ID: "tagalog", Name: "Tagalog", Region: "Central Luzon & Metro Manila", Color: "#e11d48"},
	{ID: "cebuano", Name: "Cebuano", Region: "Central Visayas & Mindanao", Color: "#2563eb"},
	{ID: "ilocano", Name: "Ilocano", Region: "Northern Luzon", Color: "#16a34a"},
	{ID: "hiligaynon", Name: "Hiligaynon", Region: "Western Visayas", Color: "#d97706"},
	{ID: "waray", Name: "Waray", Region: "Eastern Visayas", Color: "#7c3aed"},
	{ID: "bikol", Name: "Bikol", Region: "Bicol Peninsula", Color: "#0d9488"},
}

var wordData = []models.Word{
	// Tagalog
	{ID: "tag-1", DialectID: "tagalog", Word: "salamat", Translation: "thank you", Pronunciation: "sa-LA-mat",
		Example: "Salamat sa tulong mo.", ExampleTranslation: "Thank you for your help."},
	{ID: "tag-2", DialectID: "tagalog", Word: "mahal", Translation: "love", Pronunciation: "ma-HAL",
		Example: "Mahal kita.", ExampleTranslation: "I love you."},
	{ID: "tag-3", DialectID: "tagalog", Word: "bahay", Translation: "house", Pronunciation: "BA-hay",
		Example: "Malaki ang bahay nila.", ExampleTranslation: "Their house is big."},
	{ID: "tag-4", DialectID: "tagalog", Word: "tubig", Translation: "water", Pronunciation: "TU-big",
		Example: "Gusto ko ng malamig na tubig.", ExampleTranslation: "I want cold water."},
	{ID: "tag-5", DialectID: "tagalog", Word: "kaibigan", Translation: "friend", Pronunciation: "ka-i-BI-gan",
		Example: "Matalik kong kaibigan si Ana.", ExampleTranslation: "Ana is my close friend."},
	{ID: "tag-6", DialectID: "tagalog", Word: "maganda", Translation: "beautiful", Pronunciation: "ma-gan-DA",
		Example: "Maganda ang tanawin dito.", ExampleTranslation: "The view here is beautiful."},

	// Cebuano
	{ID: "ceb-1", DialectID: "cebuano", Word: "salamat", Translation: "thank you", Pronunciation: "sa-LA-mat",
		Example: "Salamat sa imong tabang.", ExampleTranslation: "Thank you for your help."},
	{ID: "ceb-2", DialectID: "cebuano", Word: "gugma", Translation: "love", Pronunciation: "GUG-ma",
		Example: "Ang gugma walay pagpili.", ExampleTranslation: "Love does not choose."},
	{ID: "ceb-3", DialectID: "cebuano", Word: "balay", Translation: "house", Pronunciation: "ba-LAY",
		Example: "Dako ang ilang balay.", ExampleTranslation: "Their house is big."},
	{ID: "ceb-4", DialectID: "cebuano", Word: "adlaw", Translation: "sun", Pronunciation: "AD-law",
		Example: "Init kaayo ang adlaw karon.", ExampleTranslation: "The sun is very hot today."},
	{ID: "ceb-5", DialectID: "cebuano", Word: "higala", Translation: "friend", Pronunciation: "hi-GA-la",
		Example: "Suod kaayo mi nga higala.", ExampleTranslation: "We are very close friends."},
	{ID: "ceb-6", DialectID: "cebuano", Word: "kaon", Translation: "to eat", Pronunciation: "KA-on",
		Example: "Kaon na ta.", ExampleTranslation: "Let's eat now."},

	// Ilocano
	{ID: "ilo-1", DialectID: "ilocano", Word: "agyamanak", Translation: "thank you", Pronunciation: "ag-ya-MA-nak",
		Example: "Agyamanak iti tulong mo.", ExampleTranslation: "Thank you for your help."},
	{ID: "ilo-2", DialectID: "ilocano", Word: "ayat", Translation: "love", Pronunciation: "A-yat",
		Example: "Napudno ti ayat na.", ExampleTranslation: "Her love is true."},
	{ID: "ilo-3", DialectID: "ilocano", Word: "balay", Translation: "house", Pronunciation: "ba-LAY",
		Example: "Dakkel ti balay da.", ExampleTranslation: "Their house is big."},
	{ID: "ilo-4", DialectID: "ilocano", Word: "danum", Translation: "water", Pronunciation: "da-NUM",
		Example: "Uminomka iti danum.", ExampleTranslation: "Drink some water."},
	{ID: "ilo-5", DialectID: "ilocano", Word: "gayyem", Translation: "friend", Pronunciation: "gay-YEM",
		Example: "Gayyem ko ni Juan.", ExampleTranslation: "Juan is my friend."},
	{ID: "ilo-6", DialectID: "ilocano", Word: "napintas", Translation: "beautiful", Pronunciation: "na-pin-TAS",
		Example: "Napintas ti buya ditoy.", ExampleTranslation: "The view here is beautiful."},

	// Hiligaynon
	{ID: "hil-1", DialectID: "hiligaynon", Word: "salamat", Translation: "thank you", Pronunciation: "sa-LA-mat",
		Example: "Salamat gid sa bulig mo.", ExampleTranslation: "Thank you so much for your help."},
	{ID: "hil-2", DialectID: "hiligaynon", Word: "palangga", Translation: "love", Pronunciation: "pa-LANG-ga",
		Example: "Palangga ko ikaw.", ExampleTranslation: "I love you."},
	{ID: "hil-3", DialectID: "hiligaynon", Word: "balay", Translation: "house", Pronunciation: "ba-LAY",
		Example: "Daku ang ila balay.", ExampleTranslation: "Their house is big."},
	{ID: "hil-4", DialectID: "hiligaynon", Word: "tubig", Translation: "water", Pronunciation: "TU-big",
		Example: "Gusto ko sang mabugnaw nga tubig.", ExampleTranslation: "I want cold water."},
	{ID: "hil-5", DialectID: "hiligaynon", Word: "abyan", Translation: "friend", Pronunciation: "AB-yan",
		Example: "Abyan ko siya halin sang una.", ExampleTranslation: "She has been my friend for a long time."},
	{ID: "hil-6", DialectID: "hiligaynon", Word: "matahum", Translation: "beautiful", Pronunciation: "ma-ta-HUM",
		Example: "Matahum ang adlaw subong.", ExampleTranslation: "The day is beautiful today."},

	// Waray
	{ID: "war-1", DialectID: "waray", Word: "salamat", Translation: "thank you", Pronunciation: "sa-LA-mat",
		Example: "Salamat han imo bulig.", ExampleTranslation: "Thank you for your help."},
	{ID: "war-2", DialectID: "waray", Word: "higugma", Translation: "love", Pronunciation: "hi-GUG-ma",
		Example: "An higugma waray katapusan.", ExampleTranslation: "Love has no end."},
	{ID: "war-3", DialectID: "waray", Word: "balay", Translation: "house", Pronunciation: "ba-LAY",
		Example: "Daku an ira balay.", ExampleTranslation: "Their house is big."},
	{ID: "war-4", DialectID: "waray", Word: "tubig", Translation: "water", Pronunciation: "TU-big",
		Example: "Karuyag ko hin mahagkot nga tubig.", ExampleTranslation: "I want cold water."},
	{ID: "war-5", DialectID: "waray", Word: "sangkay", Translation: "friend", Pronunciation: "sang-KAY",
		Example: "Sangkay ko hiya tikang han bata pa kami.", ExampleTranslation: "He has been my friend since we were young."},
	{ID: "war-6", DialectID: "waray", Word: "mahusay", Translation: "beautiful", Pronunciation: "ma-HU-say",
		Example: "Mahusay an sirangan yana.", ExampleTranslation: "The sunrise is beautiful today."},

	// Bikol
	{ID: "bik-1", DialectID: "bikol", Word: "dios mabalos", Translation: "thank you", Pronunciation: "di-OS ma-BA-los",
		Example: "Dios mabalos sa saimong tabang.", ExampleTranslation: "Thank you for your help."},
	{ID: "bik-2", DialectID: "bikol", Word: "padaba", Translation: "love", Pronunciation: "pa-DA-ba",
		Example: "Padaba taka.", ExampleTranslation: "I love you."},
	{ID: "bik-3", DialectID: "bikol", Word: "harong", Translation: "house", Pronunciation: "ha-RONG",
		Example: "Dakula an saindang harong.", ExampleTranslation: "Their house is big."},
	{ID: "bik-4", DialectID: "bikol", Word: "tubig", Translation: "water", Pronunciation: "TU-big",
		Example: "Gusto ko nin malipot na tubig.", ExampleTranslation: "I want cold water."},
	{ID: "bik-5", DialectID: "bikol", Word: "katood", Translation: "friend", Pronunciation: "ka-TO-od",
		Example: "Katood ko si Pedro.", ExampleTranslation: "Pedro is my friend."},
	{ID: "bik-6", DialectID: "bikol", Word: "magayon", Translation: "beautiful", Pronunciation: "ma-GA-yon",
		Example: "Magayon an Mayon ngonyan.", ExampleTranslation: "Mayon is beautiful today."},
}
