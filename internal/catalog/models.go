package catalog

import "github.com/dragonnestlite/assetgen/internal/model"

// commonStyle is appended to every text-to-3D prompt.
const commonStyle = "chibi, super deformed, 2.5 head ratio, low poly, game asset, " +
	"cute stylized, clean topology, single mesh, solid colors"

var builtinModels = []model.ModelDefinition{
	// Characters
	{
		Name:            "fighter",
		Filename:        "fighter.glb",
		Category:        model.CategoryCharacters,
		Method:          model.MethodImageTo3D,
		TargetPolycount: 5000,
		Prompt:          "chibi super deformed warrior girl, 2.5 head ratio, low poly game character, large head, small body, wearing simple leather armor with shoulder pads, holding a great sword, fantasy RPG adventurer style, clean topology, solid colors, cute proportions, t-pose, single mesh, game asset",
		NeedsRigging:    true,
		HeightMeters:    1.0,
		ImagePath:       "assets/reference_fantasy/mia_fantasy_sd.png",
		Animations:      []string{"idle", "walk", "run", "attack1", "attack2", "skill", "hit", "die"},
		Priority:        0,
	},
	{
		Name:            "mage",
		Filename:        "mage.glb",
		Category:        model.CategoryCharacters,
		Method:          model.MethodImageTo3D,
		TargetPolycount: 5000,
		Prompt:          "chibi super deformed mage girl, 2.5 head ratio, low poly game character, large head, small body, wearing simple robe with hooded cloak, holding a magic staff, fantasy RPG sorceress style, clean topology, solid colors, cute proportions, t-pose, single mesh, game asset",
		NeedsRigging:    true,
		HeightMeters:    1.0,
		ImagePath:       "assets/reference_fantasy/haru_fantasy_sd.png",
		Animations:      []string{"idle", "walk", "run", "cast1", "cast2", "skill", "hit", "die"},
		Priority:        0,
	},
	// Enemies
	{
		Name:            "enemy_slime",
		Filename:        "enemy_slime.glb",
		Category:        model.CategoryEnemies,
		Method:          model.MethodImageTo3D,
		TargetPolycount: 3000,
		Prompt:          "chibi super deformed cute slime monster, 2.5 head ratio, low poly game enemy, translucent blue-green body, big round eyes, small mouth, bouncy jelly creature, fantasy RPG style, clean topology, solid colors, single mesh, game asset",
		NeedsRigging:    true,
		HeightMeters:    0.5,
		ImagePath:       "assets/reference_fantasy/enemy_slime_concept.png",
		Animations:      []string{"idle", "move", "attack", "die"},
		Priority:        0,
	},
	{
		Name:            "enemy_goblin",
		Filename:        "enemy_goblin.glb",
		Category:        model.CategoryEnemies,
		Method:          model.MethodImageTo3D,
		TargetPolycount: 3000,
		Prompt:          "chibi super deformed goblin, 2.5 head ratio, low poly game enemy, large head, green skin, pointy ears, holding a crude wooden club, ragged cloth armor, mischievous expression, fantasy RPG style, clean topology, solid colors, single mesh, game asset",
		NeedsRigging:    true,
		HeightMeters:    0.8,
		ImagePath:       "assets/reference_fantasy/enemy_goblin_concept.png",
		Animations:      []string{"idle", "move", "attack", "die"},
		Priority:        1,
	},
	{
		Name:            "enemy_skeleton",
		Filename:        "enemy_skeleton.glb",
		Category:        model.CategoryEnemies,
		Method:          model.MethodImageTo3D,
		TargetPolycount: 3000,
		Prompt:          "chibi super deformed skeleton warrior, 2.5 head ratio, low poly game enemy, large skull head, small bone body, holding a rusty sword and shield, tattered cape, glowing eye sockets, fantasy RPG undead style, clean topology, solid colors, single mesh, game asset",
		NeedsRigging:    true,
		HeightMeters:    1.0,
		ImagePath:       "assets/reference_fantasy/enemy_skeleton_concept.png",
		Animations:      []string{"idle", "move", "attack", "die"},
		Priority:        1,
	},
	{
		Name:            "boss_dragon",
		Filename:        "boss_dragon.glb",
		Category:        model.CategoryEnemies,
		Method:          model.MethodImageTo3D,
		TargetPolycount: 8000,
		Prompt:          "chibi super deformed dragon boss, 2.5 head ratio, low poly game boss monster, large head with horns, small body with wings, red scales, fire breathing pose, fierce but cute expression, thick tail, clawed feet, fantasy RPG dragon style, clean topology, solid colors, single mesh, game asset",
		NeedsRigging:    true,
		HeightMeters:    2.0,
		ImagePath:       "assets/reference_fantasy/boss_dragon_concept.png",
		Animations:      []string{"idle", "move", "attack", "breath", "die"},
		Priority:        1,
	},
	// NPCs
	{
		Name:            "npc_blacksmith",
		Filename:        "npc_blacksmith.glb",
		Category:        model.CategoryNPCs,
		Method:          model.MethodImageTo3D,
		TargetPolycount: 3000,
		Prompt:          "chibi super deformed blacksmith NPC, 2.5 head ratio, low poly game character, large head, muscular small body, wearing leather apron, holding a hammer, standing near an anvil, friendly expression, fantasy RPG village blacksmith style, clean topology, solid colors, single mesh, game asset",
		NeedsRigging:    true,
		ImagePath:       "assets/reference_fantasy/npc_blacksmith_concept.png",
		Animations:      []string{"idle"},
		Priority:        2,
	},
	{
		Name:            "npc_skillmaster",
		Filename:        "npc_skillmaster.glb",
		Category:        model.CategoryNPCs,
		Method:          model.MethodImageTo3D,
		TargetPolycount: 3000,
		Prompt:          "chibi super deformed wise old mage NPC, 2.5 head ratio, low poly game character, large head with long white beard, small body wearing ornate wizard robe, holding a glowing crystal orb, pointy hat, wise expression, fantasy RPG skill master style, clean topology, solid colors, single mesh, game asset",
		NeedsRigging:    true,
		ImagePath:       "assets/reference_fantasy/npc_skillmaster_concept.png",
		Animations:      []string{"idle"},
		Priority:        2,
	},
	{
		Name:            "npc_potion",
		Filename:        "npc_potion.glb",
		Category:        model.CategoryNPCs,
		Method:          model.MethodImageTo3D,
		TargetPolycount: 3000,
		Prompt:          "chibi super deformed potion shop girl NPC, 2.5 head ratio, low poly game character, large head, small body wearing cute apron over simple dress, holding a colorful potion bottle, cheerful expression, surrounded by potion shelves, fantasy RPG style, clean topology, solid colors, single mesh, game asset",
		NeedsRigging:    true,
		ImagePath:       "assets/reference_fantasy/npc_potion_concept.png",
		Animations:      []string{"idle"},
		Priority:        2,
	},
	// Environment
	{
		Name:            "env_tree_01",
		Filename:        "env_tree_01.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 1000,
		Prompt:          "stylized cute fantasy oak tree, " + commonStyle + ", round leafy canopy, thick trunk, green leaves, brown bark, fantasy RPG village decoration",
		Priority:        2,
	},
	{
		Name:            "env_tree_02",
		Filename:        "env_tree_02.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 1000,
		Prompt:          "stylized cute fantasy pine tree, " + commonStyle + ", triangular conifer shape, dark green needles, fantasy RPG forest decoration",
		Priority:        2,
	},
	{
		Name:            "env_tree_03",
		Filename:        "env_tree_03.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 1000,
		Prompt:          "stylized cute fantasy cherry blossom tree, " + commonStyle + ", pink flower canopy, curved trunk, fantasy RPG town decoration, spring feeling",
		Priority:        2,
	},
	{
		Name:            "env_rock_01",
		Filename:        "env_rock_01.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 1000,
		Prompt:          "stylized mossy boulder rock, " + commonStyle + ", grey stone with green moss patches, rounded shape, fantasy RPG environment prop",
		Priority:        2,
	},
	{
		Name:            "env_rock_02",
		Filename:        "env_rock_02.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 1000,
		Prompt:          "stylized rock cluster, " + commonStyle + ", three small grey rocks grouped together, some moss, fantasy RPG environment prop",
		Priority:        2,
	},
	{
		Name:            "env_house_01",
		Filename:        "env_house_01.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 1000,
		Prompt:          "cute medieval cottage house, " + commonStyle + ", thatched roof, stone walls, small wooden door, chimney, fantasy RPG village building, warm cozy feeling",
		Priority:        2,
	},
	{
		Name:            "env_house_02",
		Filename:        "env_house_02.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 1000,
		Prompt:          "cute medieval shop building, " + commonStyle + ", wooden frame, plaster walls, shop sign hanging, two-story, fantasy RPG village building",
		Priority:        2,
	},
	{
		Name:            "env_dungeon_wall",
		Filename:        "env_dungeon_wall.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "stone dungeon wall tile segment, " + commonStyle + ", dark grey stone blocks, cracks, torch bracket on wall, modular piece, fantasy RPG dungeon",
		Priority:        2,
	},
	{
		Name:            "env_dungeon_floor",
		Filename:        "env_dungeon_floor.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "stone dungeon floor tile, " + commonStyle + ", flat square stone slab, slight cracks, dark color, modular piece, fantasy RPG dungeon",
		Priority:        2,
	},
	{
		Name:            "env_cave_wall",
		Filename:        "env_cave_wall.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "mossy cave wall segment, " + commonStyle + ", rough stone with green moss and hanging vines, natural rock formation, fantasy RPG cave dungeon",
		Priority:        2,
	},
	{
		Name:            "env_ruins_pillar",
		Filename:        "env_ruins_pillar.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "crumbling ancient stone pillar, " + commonStyle + ", broken top, vine-covered, mysterious rune carvings, fantasy RPG ancient ruins",
		Priority:        2,
	},
	{
		Name:            "env_door",
		Filename:        "env_door.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "medieval dungeon door with stone frame, " + commonStyle + ", heavy wooden door with iron reinforcements, arch top, iron ring handle, fantasy RPG dungeon entrance",
		Priority:        2,
	},
	{
		Name:            "env_rubble",
		Filename:        "env_rubble.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "scattered stone rubble debris pile, " + commonStyle + ", broken stone chunks and dust, collapsed wall remains, fantasy RPG dungeon debris",
		Priority:        3,
	},
	{
		Name:            "env_magic_circle",
		Filename:        "env_magic_circle.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "glowing magic circle on ground, " + commonStyle + ", flat circular arcane rune pattern, blue glow, fantasy RPG summoning circle, magical symbols",
		Priority:        3,
	},
	{
		Name:            "env_mural",
		Filename:        "env_mural.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "ancient stone wall mural relief, " + commonStyle + ", flat rectangular stone slab with carved dragon imagery, faded paint, cracks, fantasy RPG dungeon decoration",
		Priority:        3,
	},
	{
		Name:            "env_torch",
		Filename:        "env_torch.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "wall-mounted torch sconce, " + commonStyle + ", iron bracket holding wooden torch with flame, medieval fantasy RPG dungeon lighting",
		Priority:        3,
	},
	// Items
	{
		Name:            "item_chest",
		Filename:        "item_chest.glb",
		Category:        model.CategoryItems,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "cute treasure chest, " + commonStyle + ", wooden chest with golden metal bands, open lid showing sparkle, fantasy RPG loot container",
		Priority:        2,
	},
	{
		Name:            "item_potion_hp",
		Filename:        "item_potion_hp.glb",
		Category:        model.CategoryItems,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "red health potion bottle, " + commonStyle + ", round glass flask with cork, glowing red liquid inside, heart label, fantasy RPG healing item",
		Priority:        2,
	},
	{
		Name:            "item_potion_mp",
		Filename:        "item_potion_mp.glb",
		Category:        model.CategoryItems,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "blue mana potion bottle, " + commonStyle + ", round glass flask with cork, glowing blue liquid inside, star label, fantasy RPG mana item",
		Priority:        2,
	},
	{
		Name:            "item_gold",
		Filename:        "item_gold.glb",
		Category:        model.CategoryItems,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 500,
		Prompt:          "pile of gold coins, " + commonStyle + ", shiny golden coins stacked in small pile, fantasy RPG treasure drop, sparkle effect",
		Priority:        2,
	},
}
