package catalog

import "github.com/dragonnestlite/assetgen/internal/model"

var builtinSounds = []model.SoundDefinition{
	// combat
	{
		Name:            "sfx_sword_slash_01",
		Category:        model.SoundCategoryCombat,
		Text:            "fast sharp sword slash cutting through air, metallic whoosh, fantasy game",
		DurationSeconds: 0.8,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_sword_slash_02",
		Category:        model.SoundCategoryCombat,
		Text:            "quick sword swing slash, light metallic cutting sound, action RPG",
		DurationSeconds: 0.7,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_sword_heavy",
		Category:        model.SoundCategoryCombat,
		Text:            "heavy two-handed sword slam, powerful impact, deep metallic thud, fantasy",
		DurationSeconds: 1.2,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_hit_flesh",
		Category:        model.SoundCategoryCombat,
		Text:            "melee hit impact on creature, blunt thud with slight squish, game combat",
		DurationSeconds: 0.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_hit_critical",
		Category:        model.SoundCategoryCombat,
		Text:            "critical hit impact, powerful smash with metallic ring, dramatic, game combat",
		DurationSeconds: 0.8,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_hit_armor",
		Category:        model.SoundCategoryCombat,
		Text:            "weapon hitting metal armor, sharp clang, brief, game combat sound effect",
		DurationSeconds: 0.6,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_magic_cast",
		Category:        model.SoundCategoryCombat,
		Text:            "magical spell casting, mystical energy gathering, sparkle whoosh, fantasy RPG",
		DurationSeconds: 1.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_fireball",
		Category:        model.SoundCategoryCombat,
		Text:            "fireball launch, blazing fire whoosh projectile, fantasy magic spell",
		DurationSeconds: 1.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_fire_explosion",
		Category:        model.SoundCategoryCombat,
		Text:            "magical fire explosion, fiery burst with crackling flames, fantasy game",
		DurationSeconds: 1.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_ice_freeze",
		Category:        model.SoundCategoryCombat,
		Text:            "ice freezing crystallization, sharp cracking ice forming, magical frost spell",
		DurationSeconds: 1.2,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_ice_shatter",
		Category:        model.SoundCategoryCombat,
		Text:            "ice shattering into pieces, glass-like breaking, frozen crystal destruction",
		DurationSeconds: 0.8,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_lightning",
		Category:        model.SoundCategoryCombat,
		Text:            "lightning bolt strike, electric zap with thunder crack, magical spell",
		DurationSeconds: 1.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_dark_magic",
		Category:        model.SoundCategoryCombat,
		Text:            "dark magic spell, ominous energy pulse, deep resonant void sound, fantasy",
		DurationSeconds: 1.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_gravity_well",
		Category:        model.SoundCategoryCombat,
		Text:            "gravity vortex pulling, deep humming suction, black hole energy, sci-fi fantasy",
		DurationSeconds: 2.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_beam",
		Category:        model.SoundCategoryCombat,
		Text:            "energy beam laser firing continuously, sustained magical ray, high pitched hum",
		DurationSeconds: 1.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_heal",
		Category:        model.SoundCategoryCombat,
		Text:            "healing magic, gentle sparkling chime, warm restoration, soft bells, fantasy RPG",
		DurationSeconds: 1.2,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_buff",
		Category:        model.SoundCategoryCombat,
		Text:            "power-up buff activation, ascending magical chime, energy boost, fantasy game",
		DurationSeconds: 1.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_debuff",
		Category:        model.SoundCategoryCombat,
		Text:            "debuff curse applied, dark descending tone, negative magical effect, fantasy",
		DurationSeconds: 1.0,
		PromptInfluence: 0.5,
	},
	// skill
	{
		Name:            "sfx_skill_rising_slash",
		Category:        model.SoundCategorySkill,
		Text:            "upward sword slash, rising metallic sweep, aerial attack, action game",
		DurationSeconds: 1.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_skill_dash_slash",
		Category:        model.SoundCategorySkill,
		Text:            "fast dash forward with sword cut, rushing wind slash, action RPG combat",
		DurationSeconds: 0.8,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_skill_ground_slam",
		Category:        model.SoundCategorySkill,
		Text:            "heavy ground slam impact, earth-shaking stomp with debris, powerful AoE attack",
		DurationSeconds: 1.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_skill_whirlwind",
		Category:        model.SoundCategorySkill,
		Text:            "spinning whirlwind attack, rapid rotating slash, continuous whooshing wind, combat",
		DurationSeconds: 2.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_skill_war_cry",
		Category:        model.SoundCategorySkill,
		Text:            "warrior battle cry shout with energy burst, powerful rallying yell, fantasy RPG",
		DurationSeconds: 1.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_skill_meteor",
		Category:        model.SoundCategorySkill,
		Text:            "meteor falling from sky, burning descent whoosh then massive ground explosion, epic",
		DurationSeconds: 2.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_skill_blizzard",
		Category:        model.SoundCategorySkill,
		Text:            "blizzard ice storm, howling frozen wind with ice crystals, sustained magic attack",
		DurationSeconds: 3.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_skill_teleport",
		Category:        model.SoundCategorySkill,
		Text:            "magical teleport, quick spatial warp, brief phase-out shimmer then reappear, fantasy",
		DurationSeconds: 0.8,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_skill_time_slow",
		Category:        model.SoundCategorySkill,
		Text:            "time slowing down, deep resonant warble, temporal distortion, clock-like ticking fading",
		DurationSeconds: 2.0,
		PromptInfluence: 0.5,
	},
	// player
	{
		Name:            "sfx_dodge_roll",
		Category:        model.SoundCategoryPlayer,
		Text:            "quick dodge roll, body tumbling, light armor rustling, brief whoosh, action game",
		DurationSeconds: 0.6,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_footstep_stone",
		Category:        model.SoundCategoryPlayer,
		Text:            "single footstep on stone floor, boot on cobblestone, dungeon, subtle echo",
		DurationSeconds: 0.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_footstep_grass",
		Category:        model.SoundCategoryPlayer,
		Text:            "single footstep on grass, soft step on earth and vegetation, outdoor",
		DurationSeconds: 0.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_player_hurt",
		Category:        model.SoundCategoryPlayer,
		Text:            "character getting hit, impact grunt, light armor crunch, brief pain reaction sound",
		DurationSeconds: 0.6,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_player_death",
		Category:        model.SoundCategoryPlayer,
		Text:            "character death, body collapse on ground, dramatic low impact, armor clatter, somber",
		DurationSeconds: 1.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_level_up",
		Category:        model.SoundCategoryPlayer,
		Text:            "level up fanfare, triumphant ascending chime, sparkling magical bells, achievement, joyful",
		DurationSeconds: 2.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_potion_drink",
		Category:        model.SoundCategoryPlayer,
		Text:            "drinking potion, liquid gulping, glass bottle, brief magical sparkle after, RPG",
		DurationSeconds: 1.0,
		PromptInfluence: 0.5,
	},
	// enemy
	{
		Name:            "sfx_enemy_hit",
		Category:        model.SoundCategoryEnemy,
		Text:            "enemy creature getting hit, soft impact thud, slime-like squish, game combat",
		DurationSeconds: 0.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_enemy_death",
		Category:        model.SoundCategoryEnemy,
		Text:            "small monster dying, deflating poof with sparkle, cute creature defeat, game",
		DurationSeconds: 1.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_slime_bounce",
		Category:        model.SoundCategoryEnemy,
		Text:            "slime bouncing, wobbly jelly impact, soft squishy boing, cute monster, game",
		DurationSeconds: 0.6,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_goblin_attack",
		Category:        model.SoundCategoryEnemy,
		Text:            "small goblin creature attack, quick rusty blade swipe, aggressive screech, fantasy",
		DurationSeconds: 0.8,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_skeleton_rattle",
		Category:        model.SoundCategoryEnemy,
		Text:            "skeleton bones rattling, clattering undead movement, eerie bone clinking, fantasy",
		DurationSeconds: 1.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_dragon_roar",
		Category:        model.SoundCategoryEnemy,
		Text:            "dragon roar, deep powerful bestial roar with fire breath undertone, epic boss monster",
		DurationSeconds: 2.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_dragon_breath",
		Category:        model.SoundCategoryEnemy,
		Text:            "dragon fire breath attack, sustained flame stream, roaring fire whoosh, epic boss",
		DurationSeconds: 2.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_dragon_stomp",
		Category:        model.SoundCategoryEnemy,
		Text:            "massive creature ground stomp, heavy earth-shaking impact, giant beast footfall",
		DurationSeconds: 1.0,
		PromptInfluence: 0.5,
	},
	// ui
	{
		Name:            "sfx_ui_click",
		Category:        model.SoundCategoryUI,
		Text:            "UI button click, soft mechanical click, clean interface tap, subtle",
		DurationSeconds: 0.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_ui_open",
		Category:        model.SoundCategoryUI,
		Text:            "menu opening, soft magical chime, interface appear, gentle whoosh, game UI",
		DurationSeconds: 0.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_ui_close",
		Category:        model.SoundCategoryUI,
		Text:            "menu closing, soft descending tone, interface dismiss, gentle reverse whoosh",
		DurationSeconds: 0.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_ui_error",
		Category:        model.SoundCategoryUI,
		Text:            "error buzz, low negative tone, denied action, brief dull thud, game UI",
		DurationSeconds: 0.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_skill_learn",
		Category:        model.SoundCategoryUI,
		Text:            "learning new skill, magical scroll opening with sparkle, knowledge gained, fantasy RPG",
		DurationSeconds: 1.5,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_equip",
		Category:        model.SoundCategoryUI,
		Text:            "equipping weapon or armor, metallic snap into place, gear slot click, RPG",
		DurationSeconds: 0.6,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_gold_pickup",
		Category:        model.SoundCategoryUI,
		Text:            "collecting gold coins, jingling metallic chime, treasure pickup, RPG reward",
		DurationSeconds: 0.8,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_chest_open",
		Category:        model.SoundCategoryUI,
		Text:            "treasure chest opening, wooden lid creak then magical sparkle reveal, RPG loot",
		DurationSeconds: 1.5,
		PromptInfluence: 0.5,
	},
	// environment
	{
		Name:            "sfx_door_open",
		Category:        model.SoundCategoryEnvironment,
		Text:            "heavy dungeon door opening, stone grinding, ancient mechanism, echo, fantasy",
		DurationSeconds: 2.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_portal",
		Category:        model.SoundCategoryEnvironment,
		Text:            "magical portal opening, swirling energy vortex, mystical hum, fantasy RPG gateway",
		DurationSeconds: 2.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_dungeon_clear",
		Category:        model.SoundCategoryEnvironment,
		Text:            "dungeon room cleared, triumphant short fanfare, victory chime, enemies defeated",
		DurationSeconds: 2.0,
		PromptInfluence: 0.5,
	},
	{
		Name:            "sfx_boss_intro",
		Category:        model.SoundCategoryEnvironment,
		Text:            "boss encounter intro, dramatic ominous rumble building tension, epic confrontation",
		DurationSeconds: 3.0,
		PromptInfluence: 0.5,
	},
	// ambient
	{
		Name:            "sfx_ambient_cave",
		Category:        model.SoundCategoryAmbient,
		Text:            "cave dungeon ambience, dripping water echoes, distant wind, mysterious atmosphere",
		DurationSeconds: 10.0,
		PromptInfluence: 0.3,
	},
	{
		Name:            "sfx_ambient_town",
		Category:        model.SoundCategoryAmbient,
		Text:            "peaceful medieval fantasy town, birds chirping, gentle breeze, distant chatter",
		DurationSeconds: 10.0,
		PromptInfluence: 0.3,
	},
	{
		Name:            "sfx_ambient_ruins",
		Category:        model.SoundCategoryAmbient,
		Text:            "ancient ruins ambience, eerie wind, faint magical humming, crumbling stone echoes",
		DurationSeconds: 10.0,
		PromptInfluence: 0.3,
	},
	// bgm
	{
		Name:            "bgm_title",
		Category:        model.SoundCategoryBGM,
		Text:            "epic orchestral fantasy RPG title screen music, heroic brass fanfare with strings, adventurous and majestic, medieval fantasy game menu theme, slow tempo, grand and inspiring",
		DurationSeconds: 22.0,
	},
	{
		Name:            "bgm_town",
		Category:        model.SoundCategoryBGM,
		Text:            "peaceful medieval fantasy town music, gentle acoustic guitar and flute melody, calm and cozy village atmosphere, warm strings background, relaxing RPG town theme, moderate tempo",
		DurationSeconds: 22.0,
	},
	{
		Name:            "bgm_dungeon_forest",
		Category:        model.SoundCategoryBGM,
		Text:            "mysterious forest cave exploration music, ambient dark fantasy dungeon theme, eerie strings with subtle percussion, dripping water echoes, tense and atmospheric, slow tempo",
		DurationSeconds: 22.0,
	},
	{
		Name:            "bgm_dungeon_ruins",
		Category:        model.SoundCategoryBGM,
		Text:            "ancient ruins dungeon music, dark orchestral fantasy theme, ominous choir and deep brass, echoing percussion in stone halls, mysterious and foreboding, moderate tempo",
		DurationSeconds: 22.0,
	},
	{
		Name:            "bgm_boss",
		Category:        model.SoundCategoryBGM,
		Text:            "intense boss battle music, epic fast-paced orchestral combat theme, aggressive drums and brass, dramatic strings, high energy fantasy RPG boss fight, fast tempo, exciting and dangerous",
		DurationSeconds: 22.0,
	},
	{
		Name:            "bgm_result",
		Category:        model.SoundCategoryBGM,
		Text:            "victory fanfare music, triumphant orchestral celebration theme, bright brass and strings, joyful and rewarding RPG clear screen music, moderate tempo, uplifting",
		DurationSeconds: 15.0,
	},
}
