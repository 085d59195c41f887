package const_data

import "go-splendor/entities"

// Cards 全部发展卡：一级 40 张、二级 30 张、三级 20 张。
// 进程启动时加载一次，之后只读。
var Cards = []entities.Card{
	// ----- 1 级卡 -----
	{ID: "card_1_1", Tier: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Onyx: 3}},
	{ID: "card_1_2", Tier: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Onyx: 2, entities.Ruby: 1}},
	{ID: "card_1_3", Tier: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Emerald: 1, entities.Sapphire: 1, entities.Onyx: 1}},
	{ID: "card_1_4", Tier: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Emerald: 1, entities.Sapphire: 2, entities.Ruby: 1, entities.Onyx: 1}},
	{ID: "card_1_5", Tier: 1, Points: 1, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Sapphire: 4}},
	{ID: "card_1_6", Tier: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Ruby: 2, entities.Sapphire: 1}},
	{ID: "card_1_7", Tier: 1, Points: 0, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Emerald: 2, entities.Onyx: 2}},
	{ID: "card_1_8", Tier: 1, Points: 1, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Emerald: 3, entities.Sapphire: 1, entities.Onyx: 1}},
	{ID: "card_1_9", Tier: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Emerald: 3}},
	{ID: "card_1_10", Tier: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Emerald: 2, entities.Ruby: 1}},
	{ID: "card_1_11", Tier: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 1, entities.Emerald: 1, entities.Ruby: 1}},
	{ID: "card_1_12", Tier: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 1, entities.Emerald: 2, entities.Ruby: 1, entities.Onyx: 1}},
	{ID: "card_1_13", Tier: 1, Points: 1, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Ruby: 4}},
	{ID: "card_1_14", Tier: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 2, entities.Emerald: 1}},
	{ID: "card_1_15", Tier: 1, Points: 0, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 2, entities.Onyx: 2}},
	{ID: "card_1_16", Tier: 1, Points: 1, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 3, entities.Emerald: 1, entities.Ruby: 1}},
	{ID: "card_1_17", Tier: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Sapphire: 3}},
	{ID: "card_1_18", Tier: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Sapphire: 2, entities.Onyx: 1}},
	{ID: "card_1_19", Tier: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 1, entities.Sapphire: 1, entities.Onyx: 1}},
	{ID: "card_1_20", Tier: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 1, entities.Sapphire: 1, entities.Ruby: 2, entities.Onyx: 1}},
	{ID: "card_1_21", Tier: 1, Points: 1, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Onyx: 4}},
	{ID: "card_1_22", Tier: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 2, entities.Sapphire: 1}},
	{ID: "card_1_23", Tier: 1, Points: 0, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 2, entities.Ruby: 2}},
	{ID: "card_1_24", Tier: 1, Points: 1, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 1, entities.Sapphire: 3, entities.Onyx: 1}},
	{ID: "card_1_25", Tier: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Diamond: 3}},
	{ID: "card_1_26", Tier: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Diamond: 2, entities.Emerald: 1}},
	{ID: "card_1_27", Tier: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Diamond: 1, entities.Sapphire: 1, entities.Emerald: 1}},
	{ID: "card_1_28", Tier: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Diamond: 1, entities.Sapphire: 1, entities.Emerald: 2, entities.Onyx: 1}},
	{ID: "card_1_29", Tier: 1, Points: 1, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Emerald: 4}},
	{ID: "card_1_30", Tier: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Sapphire: 2, entities.Emerald: 1}},
	{ID: "card_1_31", Tier: 1, Points: 0, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Sapphire: 2, entities.Onyx: 2}},
	{ID: "card_1_32", Tier: 1, Points: 1, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Sapphire: 1, entities.Emerald: 3, entities.Onyx: 1}},
	{ID: "card_1_33", Tier: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Ruby: 3}},
	{ID: "card_1_34", Tier: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Ruby: 2, entities.Diamond: 1}},
	{ID: "card_1_35", Tier: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Diamond: 1, entities.Sapphire: 1, entities.Ruby: 1}},
	{ID: "card_1_36", Tier: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Diamond: 1, entities.Sapphire: 2, entities.Emerald: 1, entities.Ruby: 1}},
	{ID: "card_1_37", Tier: 1, Points: 1, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Diamond: 4}},
	{ID: "card_1_38", Tier: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Sapphire: 2, entities.Ruby: 1}},
	{ID: "card_1_39", Tier: 1, Points: 0, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Emerald: 2, entities.Ruby: 2}},
	{ID: "card_1_40", Tier: 1, Points: 1, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Sapphire: 3, entities.Emerald: 1, entities.Ruby: 1}},
	// ----- 2 级卡 -----
	{ID: "card_2_1", Tier: 2, Points: 1, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Emerald: 3, entities.Sapphire: 2, entities.Onyx: 2}},
	{ID: "card_2_2", Tier: 2, Points: 1, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Emerald: 2, entities.Ruby: 3, entities.Onyx: 3}},
	{ID: "card_2_3", Tier: 2, Points: 2, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Ruby: 5}},
	{ID: "card_2_4", Tier: 2, Points: 2, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Emerald: 1, entities.Ruby: 4, entities.Onyx: 2}},
	{ID: "card_2_5", Tier: 2, Points: 3, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Onyx: 6}},
	{ID: "card_2_6", Tier: 2, Points: 1, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Sapphire: 3, entities.Emerald: 2, entities.Ruby: 2}},
	{ID: "card_2_7", Tier: 2, Points: 1, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 2, entities.Emerald: 1, entities.Ruby: 4}},
	{ID: "card_2_8", Tier: 2, Points: 1, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 3, entities.Emerald: 2, entities.Onyx: 3}},
	{ID: "card_2_9", Tier: 2, Points: 2, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Onyx: 5}},
	{ID: "card_2_10", Tier: 2, Points: 2, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 2, entities.Emerald: 1, entities.Onyx: 4}},
	{ID: "card_2_11", Tier: 2, Points: 3, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Emerald: 6}},
	{ID: "card_2_12", Tier: 2, Points: 1, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 2, entities.Emerald: 3, entities.Ruby: 2}},
	{ID: "card_2_13", Tier: 2, Points: 1, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 4, entities.Sapphire: 2, entities.Ruby: 1}},
	{ID: "card_2_14", Tier: 2, Points: 1, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 3, entities.Sapphire: 3, entities.Onyx: 2}},
	{ID: "card_2_15", Tier: 2, Points: 2, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 5}},
	{ID: "card_2_16", Tier: 2, Points: 2, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 4, entities.Sapphire: 1, entities.Onyx: 2}},
	{ID: "card_2_17", Tier: 2, Points: 3, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Ruby: 6}},
	{ID: "card_2_18", Tier: 2, Points: 2, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 2, entities.Sapphire: 3, entities.Ruby: 3}},
	{ID: "card_2_19", Tier: 2, Points: 1, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Diamond: 1, entities.Sapphire: 4, entities.Emerald: 2}},
	{ID: "card_2_20", Tier: 2, Points: 1, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Diamond: 2, entities.Sapphire: 3, entities.Emerald: 3}},
	{ID: "card_2_21", Tier: 2, Points: 2, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Sapphire: 5}},
	{ID: "card_2_22", Tier: 2, Points: 2, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Sapphire: 4, entities.Emerald: 1, entities.Onyx: 2}},
	{ID: "card_2_23", Tier: 2, Points: 3, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Diamond: 6}},
	{ID: "card_2_24", Tier: 2, Points: 2, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Emerald: 5, entities.Onyx: 3}},
	{ID: "card_2_25", Tier: 2, Points: 1, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Diamond: 2, entities.Sapphire: 1, entities.Emerald: 4}},
	{ID: "card_2_26", Tier: 2, Points: 1, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Diamond: 3, entities.Sapphire: 2, entities.Ruby: 3}},
	{ID: "card_2_27", Tier: 2, Points: 2, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Emerald: 5}},
	{ID: "card_2_28", Tier: 2, Points: 2, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Diamond: 2, entities.Sapphire: 1, entities.Emerald: 4}},
	{ID: "card_2_29", Tier: 2, Points: 3, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Sapphire: 6}},
	{ID: "card_2_30", Tier: 2, Points: 2, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Diamond: 3, entities.Ruby: 3, entities.Emerald: 2}},
	// ----- 3 级卡 -----
	{ID: "card_3_1", Tier: 3, Points: 3, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Emerald: 3, entities.Sapphire: 3, entities.Ruby: 5, entities.Onyx: 3}},
	{ID: "card_3_2", Tier: 3, Points: 4, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Ruby: 7}},
	{ID: "card_3_3", Tier: 3, Points: 4, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Emerald: 3, entities.Ruby: 6, entities.Onyx: 3}},
	{ID: "card_3_4", Tier: 3, Points: 5, Bonus: entities.Diamond, Cost: entities.GemBank{entities.Ruby: 7, entities.Onyx: 3}},
	{ID: "card_3_5", Tier: 3, Points: 4, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 3, entities.Emerald: 6, entities.Ruby: 3}},
	{ID: "card_3_6", Tier: 3, Points: 4, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Onyx: 7}},
	{ID: "card_3_7", Tier: 3, Points: 5, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 3, entities.Onyx: 7}},
	{ID: "card_3_8", Tier: 3, Points: 3, Bonus: entities.Sapphire, Cost: entities.GemBank{entities.Diamond: 3, entities.Emerald: 3, entities.Ruby: 3, entities.Onyx: 5}},
	{ID: "card_3_9", Tier: 3, Points: 4, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 7}},
	{ID: "card_3_10", Tier: 3, Points: 4, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 6, entities.Sapphire: 3, entities.Onyx: 3}},
	{ID: "card_3_11", Tier: 3, Points: 5, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 7, entities.Sapphire: 3}},
	{ID: "card_3_12", Tier: 3, Points: 3, Bonus: entities.Emerald, Cost: entities.GemBank{entities.Diamond: 5, entities.Sapphire: 3, entities.Ruby: 3, entities.Onyx: 3}},
	{ID: "card_3_13", Tier: 3, Points: 5, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Diamond: 3, entities.Sapphire: 7}},
	{ID: "card_3_14", Tier: 3, Points: 4, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Sapphire: 7}},
	{ID: "card_3_15", Tier: 3, Points: 4, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Diamond: 3, entities.Sapphire: 6, entities.Emerald: 3}},
	{ID: "card_3_16", Tier: 3, Points: 3, Bonus: entities.Ruby, Cost: entities.GemBank{entities.Diamond: 3, entities.Sapphire: 5, entities.Emerald: 3, entities.Onyx: 3}},
	{ID: "card_3_17", Tier: 3, Points: 5, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Emerald: 7, entities.Sapphire: 3}},
	{ID: "card_3_18", Tier: 3, Points: 4, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Emerald: 7}},
	{ID: "card_3_19", Tier: 3, Points: 4, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Diamond: 3, entities.Emerald: 6, entities.Sapphire: 3}},
	{ID: "card_3_20", Tier: 3, Points: 3, Bonus: entities.Onyx, Cost: entities.GemBank{entities.Diamond: 5, entities.Sapphire: 3, entities.Emerald: 3, entities.Ruby: 3}},
}
