package const_data

import "go-splendor/entities"

// Nobles 全部贵族，每位固定 3 分
var Nobles = []entities.Noble{
	{ID: "noble_1", Name: "Catherine de' Medici", Points: 3, Requirement: entities.GemBank{entities.Diamond: 3, entities.Sapphire: 3, entities.Emerald: 3}},
	{ID: "noble_2", Name: "Elisabeth of Austria", Points: 3, Requirement: entities.GemBank{entities.Sapphire: 3, entities.Emerald: 3, entities.Ruby: 3}},
	{ID: "noble_3", Name: "Isabella I of Castile", Points: 3, Requirement: entities.GemBank{entities.Emerald: 3, entities.Ruby: 3, entities.Onyx: 3}},
	{ID: "noble_4", Name: "Niccolò Machiavelli", Points: 3, Requirement: entities.GemBank{entities.Ruby: 3, entities.Onyx: 3, entities.Diamond: 3}},
	{ID: "noble_5", Name: "Suleiman the Magnificent", Points: 3, Requirement: entities.GemBank{entities.Onyx: 3, entities.Diamond: 3, entities.Sapphire: 3}},
	{ID: "noble_6", Name: "Anne of Brittany", Points: 3, Requirement: entities.GemBank{entities.Diamond: 4, entities.Onyx: 4}},
	{ID: "noble_7", Name: "Charles V", Points: 3, Requirement: entities.GemBank{entities.Sapphire: 4, entities.Diamond: 4}},
	{ID: "noble_8", Name: "Francis I of France", Points: 3, Requirement: entities.GemBank{entities.Emerald: 4, entities.Sapphire: 4}},
	{ID: "noble_9", Name: "Henry VIII", Points: 3, Requirement: entities.GemBank{entities.Ruby: 4, entities.Emerald: 4}},
	{ID: "noble_10", Name: "Mary Stuart", Points: 3, Requirement: entities.GemBank{entities.Onyx: 4, entities.Ruby: 4}},
}
