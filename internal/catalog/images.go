package catalog

import "github.com/dragonnestlite/assetgen/internal/model"

const (
	iconPrefix = "game skill icon, "
	iconSuffix = ", dark background, clean edges, 64x64, vibrant colors, " +
		"no text, centered composition, fantasy RPG style"
)

func iconPrompt(description string) string {
	return iconPrefix + description + iconSuffix
}

var builtinImages = []model.ImageDefinition{
	// Character costume conversion (image-to-image)
	{
		Name:      "mia_fantasy_sd",
		Filename:  "mia_fantasy_sd.png",
		Category:  model.ImageCategoryCharacters,
		Dir:       "reference_fantasy",
		Prompt:    "Keep the character's face, hairstyle, and body exactly the same. Change only the clothing to simple fantasy RPG style: leather armor, shoulder pads, belt with dagger, knee-high boots, greatsword. Style: chibi, super deformed, 2.5 head ratio, cute, clean simple design. White background. Full body front view.",
		Reference: "Mia_SD.jpg",
	},
	{
		Name:      "haru_fantasy_sd",
		Filename:  "haru_fantasy_sd.png",
		Category:  model.ImageCategoryCharacters,
		Dir:       "reference_fantasy",
		Prompt:    "Keep the character's face, hairstyle, and body exactly the same. Change only the clothing to simple fantasy RPG style: simple robe, hooded short cloak, wooden staff with gem, short boots, belt pouch. Style: chibi, super deformed, 2.5 head ratio, cute, clean simple design. White background. Full body front view.",
		Reference: "Haru_SD.jpg",
	},
	{
		Name:      "chara_mia",
		Filename:  "chara_mia.png",
		Category:  model.ImageCategoryCharacters,
		Dir:       "ui",
		Prompt:    "Keep the character's face, hairstyle, and body exactly the same. Change only the clothing to simple fantasy RPG style: leather armor, shoulder pads, belt with dagger, knee-high boots, greatsword. Style: cute, clean simple design, full body front view. White background.",
		Reference: "CharacterSheet_Mia.png",
	},
	{
		Name:      "chara_haru",
		Filename:  "chara_haru.png",
		Category:  model.ImageCategoryCharacters,
		Dir:       "ui",
		Prompt:    "Keep the character's face, hairstyle, and body exactly the same. Change only the clothing to simple fantasy RPG style: simple robe, hooded short cloak, wooden staff with gem, short boots, belt pouch. Style: cute, clean simple design, full body front view. White background.",
		Reference: "CharacterSheet_haru.png",
	},
	// Enemy and NPC concept art
	{
		Name:     "enemy_slime",
		Filename: "enemy_slime.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi cute green translucent slime monster, large cute eyes, 2.5 head ratio, low poly style, fantasy RPG, white background, simple design",
	},
	{
		Name:     "enemy_slime_concept",
		Filename: "enemy_slime_concept.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi cute green translucent slime monster, large cute eyes, 2.5 head ratio, low poly style, fantasy RPG, white background, simple design, front view, full body, character concept art sheet",
	},
	{
		Name:     "enemy_goblin",
		Filename: "enemy_goblin.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi super deformed goblin warrior, small body, large head, holding wooden club, green skin, 2.5 head ratio, low poly style, fantasy RPG, white background",
	},
	{
		Name:     "enemy_goblin_concept",
		Filename: "enemy_goblin_concept.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi super deformed goblin warrior, small body, large head, holding wooden club, green skin, 2.5 head ratio, low poly style, fantasy RPG, white background, front view, full body, character concept art sheet",
	},
	{
		Name:     "enemy_skeleton",
		Filename: "enemy_skeleton.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi super deformed skeleton warrior, bone armor, holding rusty sword, 2.5 head ratio, low poly style, fantasy RPG, white background",
	},
	{
		Name:     "enemy_skeleton_concept",
		Filename: "enemy_skeleton_concept.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi super deformed skeleton warrior, bone armor, holding rusty sword, 2.5 head ratio, low poly style, fantasy RPG, white background, front view, full body, character concept art sheet",
	},
	{
		Name:     "boss_dragon",
		Filename: "boss_dragon.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi cute red dragon, large head, small wings, 2.5 head ratio, low poly style, fantasy RPG, white background, front view",
	},
	{
		Name:     "boss_dragon_concept",
		Filename: "boss_dragon_concept.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi cute red dragon boss, large head, small wings, fire breathing, 2.5 head ratio, low poly style, fantasy RPG, white background, front view, full body, character concept art sheet",
	},
	{
		Name:     "npc_blacksmith",
		Filename: "npc_blacksmith.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi super deformed blacksmith NPC, sturdy build, leather apron, holding hammer, 2.5 head ratio, low poly style, fantasy RPG, white background",
	},
	{
		Name:     "npc_blacksmith_concept",
		Filename: "npc_blacksmith_concept.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi super deformed blacksmith NPC, sturdy build, leather apron, holding hammer, 2.5 head ratio, low poly style, fantasy RPG, white background, front view, full body, character concept art sheet",
	},
	{
		Name:     "npc_skillmaster",
		Filename: "npc_skillmaster.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi super deformed old wizard NPC, long beard, holding staff, pointed hat, 2.5 head ratio, low poly style, fantasy RPG, white background",
	},
	{
		Name:     "npc_skillmaster_concept",
		Filename: "npc_skillmaster_concept.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi super deformed old wizard NPC, long beard, holding staff, pointed hat, 2.5 head ratio, low poly style, fantasy RPG, white background, front view, full body, character concept art sheet",
	},
	{
		Name:     "npc_potion",
		Filename: "npc_potion.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi super deformed potion merchant NPC, hooded, holding potion bottle, 2.5 head ratio, low poly style, fantasy RPG, white background",
	},
	{
		Name:     "npc_potion_concept",
		Filename: "npc_potion_concept.png",
		Category: model.ImageCategoryEnemies,
		Dir:      "reference_fantasy",
		Prompt:   "chibi super deformed potion merchant NPC, hooded, holding potion bottle, 2.5 head ratio, low poly style, fantasy RPG, white background, front view, full body, character concept art sheet",
	},
	// Skill icons
	{
		Name:     "icon_impact_punch",
		Filename: "icon_impact_punch.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("fist impact with golden glowing energy, heavy punch"),
	},
	{
		Name:     "icon_heavy_slash",
		Filename: "icon_heavy_slash.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("heavy sword downward slash, powerful strike, orange energy trail"),
	},
	{
		Name:     "icon_rising_slash",
		Filename: "icon_rising_slash.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("upward sword slash, rising arc, white energy trail"),
	},
	{
		Name:     "icon_tumble",
		Filename: "icon_tumble.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("dodge roll motion, evasive tumble, speed lines"),
	},
	{
		Name:     "icon_aerial_evasion_w",
		Filename: "icon_aerial_evasion_w.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("aerial recovery with glowing wings, mid-air dodge"),
	},
	{
		Name:     "icon_dash",
		Filename: "icon_dash.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("speed dash with wind trail, forward burst movement"),
	},
	{
		Name:     "icon_physical_mastery",
		Filename: "icon_physical_mastery.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("muscle power with red aura, physical strength symbol"),
	},
	{
		Name:     "icon_mental_mastery",
		Filename: "icon_mental_mastery.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("mental energy with blue aura, mind power symbol"),
	},
	{
		Name:     "icon_dash_slash",
		Filename: "icon_dash_slash.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("forward rushing three-hit sword slash, speed dash attack, blue energy"),
	},
	{
		Name:     "icon_triple_slash",
		Filename: "icon_triple_slash.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("triple consecutive sword slashes, three blade trails"),
	},
	{
		Name:     "icon_line_drive",
		Filename: "icon_line_drive.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("piercing thrust attack, sword penetrating forward, green energy"),
	},
	{
		Name:     "icon_hacking_stance",
		Filename: "icon_hacking_stance.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("rapid continuous overhead sword strikes, eight-hit combo"),
	},
	{
		Name:     "icon_infinity_edge",
		Filename: "icon_infinity_edge.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("ultimate glowing sword, 20-hit super speed slash, purple legendary aura"),
	},
	{
		Name:     "icon_moonlight_splitter",
		Filename: "icon_moonlight_splitter.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("crescent moon energy blade projectile, silver moonlight"),
	},
	{
		Name:     "icon_cyclone_slash",
		Filename: "icon_cyclone_slash.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("spinning sword slash, surrounding cyclone, wind energy"),
	},
	{
		Name:     "icon_halfmoon_slash",
		Filename: "icon_halfmoon_slash.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("large half-moon energy wave, massive crescent blade"),
	},
	{
		Name:     "icon_crescent_cleave",
		Filename: "icon_crescent_cleave.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("five consecutive shockwave slashes, crescents flying forward"),
	},
	{
		Name:     "icon_great_wave",
		Filename: "icon_great_wave.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("ultimate sword energy explosion, omnidirectional blade aura, golden legendary"),
	},
	{
		Name:     "icon_stomp",
		Filename: "icon_stomp.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("foot stomping ground, shockwave rings, earth impact"),
	},
	{
		Name:     "icon_whirlwind",
		Filename: "icon_whirlwind.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("spinning axe whirlwind attack, four-hit rotation"),
	},
	{
		Name:     "icon_circle_swing",
		Filename: "icon_circle_swing.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("massive circular swing, heavy weapon full rotation"),
	},
	{
		Name:     "icon_demolition_fist",
		Filename: "icon_demolition_fist.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("ground pound with fist, earth shattering upward debris"),
	},
	{
		Name:     "icon_maelstrom_howl",
		Filename: "icon_maelstrom_howl.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("ultimate storm vortex area, raging purple tempest, legendary aura"),
	},
	{
		Name:     "icon_iron_skin",
		Filename: "icon_iron_skin.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("iron shield defensive buff, metallic silver armor glow"),
	},
	{
		Name:     "icon_taunting_howl",
		Filename: "icon_taunting_howl.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("war cry taunt, red aggro shockwave, angry face"),
	},
	{
		Name:     "icon_battle_howl",
		Filename: "icon_battle_howl.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("battle cry buff, orange attack power boost aura"),
	},
	{
		Name:     "icon_howling_charge",
		Filename: "icon_howling_charge.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("charging forward with super armor glow, bull rush"),
	},
	{
		Name:     "icon_fortress",
		Filename: "icon_fortress.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("ultimate invincible fortress, golden shield dome, legendary aura"),
	},
	{
		Name:     "icon_magic_missile",
		Filename: "icon_magic_missile.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("homing magic missile, glowing blue arcane projectile"),
	},
	{
		Name:     "icon_void_blast",
		Filename: "icon_void_blast.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("void explosion, purple dark energy burst forward"),
	},
	{
		Name:     "icon_glacial_spike",
		Filename: "icon_glacial_spike.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("ice spike projectile, frozen crystal shard, blue frost"),
	},
	{
		Name:     "icon_teleport",
		Filename: "icon_teleport.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("teleportation magic circle, instant blink, arcane symbols"),
	},
	{
		Name:     "icon_aerial_evasion_s",
		Filename: "icon_aerial_evasion_s.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("aerial magic recovery, floating arcane wings"),
	},
	{
		Name:     "icon_poison_missile",
		Filename: "icon_poison_missile.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("poison swamp puddle, toxic green bubbling area"),
	},
	{
		Name:     "icon_intelligence_mastery",
		Filename: "icon_intelligence_mastery.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("intelligence book with arcane runes, magic power symbol"),
	},
	{
		Name:     "icon_mind_conquer",
		Filename: "icon_mind_conquer.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("mind energy spiral, MP regeneration, cyan mana flow"),
	},
	{
		Name:     "icon_flame_spark",
		Filename: "icon_flame_spark.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("double fire spark projectiles, orange flame balls"),
	},
	{
		Name:     "icon_fireball",
		Filename: "icon_fireball.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("large fireball with explosion aura, massive fire sphere"),
	},
	{
		Name:     "icon_inferno",
		Filename: "icon_inferno.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("fire pillar erupting from ground, triple flame column"),
	},
	{
		Name:     "icon_flame_wall",
		Filename: "icon_flame_wall.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("wall of fire, horizontal flame barrier, burning"),
	},
	{
		Name:     "icon_phoenix_storm",
		Filename: "icon_phoenix_storm.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("ultimate phoenix rising, fire bird descending, red golden legendary aura"),
	},
	{
		Name:     "icon_icy_shard",
		Filename: "icon_icy_shard.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("scattering ice crystal shards, three frozen fragments"),
	},
	{
		Name:     "icon_freezing_field",
		Filename: "icon_freezing_field.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("area freeze circle, frozen ground, ice crystals expanding"),
	},
	{
		Name:     "icon_frost_wind",
		Filename: "icon_frost_wind.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("icy wind storm, four-hit blizzard gust, frost particles"),
	},
	{
		Name:     "icon_elemental_shield",
		Filename: "icon_elemental_shield.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("magic absorption shield, blue crystal barrier, protective"),
	},
	{
		Name:     "icon_blizzard_storm",
		Filename: "icon_blizzard_storm.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("ultimate blizzard vortex, massive ice storm, blue legendary aura"),
	},
	{
		Name:     "icon_gravity_ball",
		Filename: "icon_gravity_ball.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("dark gravity sphere, pulling force, purple distortion"),
	},
	{
		Name:     "icon_summon_black_hole",
		Filename: "icon_summon_black_hole.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("black hole vortex, dark void suction, space warp"),
	},
	{
		Name:     "icon_nine_tail_laser",
		Filename: "icon_nine_tail_laser.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("nine homing laser beams, purple tracking rays"),
	},
	{
		Name:     "icon_gravity_crush",
		Filename: "icon_gravity_crush.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("gravity compression crushing force, dark implosion"),
	},
	{
		Name:     "icon_singularity",
		Filename: "icon_singularity.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("ultimate singularity black hole, cosmic destruction, purple legendary aura"),
	},
	{
		Name:     "icon_slow_area",
		Filename: "icon_slow_area.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("time slow zone, clock gears, distorted hourglass field"),
	},
	{
		Name:     "icon_time_acceleration",
		Filename: "icon_time_acceleration.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("time speed up buff, fast forward clock, golden time aura"),
	},
	{
		Name:     "icon_time_stop",
		Filename: "icon_time_stop.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("time freeze, shattered clock face, frozen moment"),
	},
	{
		Name:     "icon_linear_ray",
		Filename: "icon_linear_ray.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("straight penetrating energy beam, white laser line"),
	},
	{
		Name:     "icon_time_break",
		Filename: "icon_time_break.png",
		Category: model.ImageCategoryIcons,
		Dir:      "ui",
		Prompt:   iconPrompt("ultimate time shatter, broken clock explosion, golden legendary aura"),
	},
	// UI elements
	{
		Name:     "ui_hp_bar_bg",
		Filename: "ui_hp_bar_bg.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI health bar background frame, dark metallic border, 256x32 pixels, horizontal rectangle, fantasy RPG style, ornate edges, transparent center area, clean design, no text",
	},
	{
		Name:     "ui_hp_bar_fill",
		Filename: "ui_hp_bar_fill.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI health bar fill, smooth red to dark red gradient, 252x28 pixels, horizontal rectangle, slight inner glow, clean edges, no border, no text, transparent background",
	},
	{
		Name:     "ui_mp_bar_bg",
		Filename: "ui_mp_bar_bg.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI mana bar background frame, dark metallic border, 256x32 pixels, horizontal rectangle, fantasy RPG style, ornate edges, transparent center area, clean design, no text",
	},
	{
		Name:     "ui_mp_bar_fill",
		Filename: "ui_mp_bar_fill.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI mana bar fill, smooth blue to dark blue gradient, 252x28 pixels, horizontal rectangle, slight inner glow, clean edges, no border, no text, transparent background",
	},
	{
		Name:     "ui_skill_slot",
		Filename: "ui_skill_slot.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI skill slot frame, ornate golden border, dark inner area, 64x64 pixels, square, medieval RPG style, subtle glow, transparent center, no text, clean vector edges",
	},
	{
		Name:     "ui_skill_slot_cd",
		Filename: "ui_skill_slot_cd.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI skill slot cooldown overlay, semi-transparent dark grey, clock-like sweep indicator, 64x64 pixels, square, cooldown timer visual, no text, dark overlay",
	},
	{
		Name:     "ui_dialog_box",
		Filename: "ui_dialog_box.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI dialog box, ornate wooden frame with golden trim, 512x256 pixels, horizontal rectangle, fantasy RPG style, dark semi-transparent inner area, scroll-like edges, no text, clean design",
	},
	{
		Name:     "ui_minimap_frame",
		Filename: "ui_minimap_frame.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI minimap frame, ornate circular border, golden compass edges, 200x200 pixels, square with round inner cutout, fantasy RPG style, transparent center, no text, clean design",
	},
	{
		Name:     "ui_btn_start",
		Filename: "ui_btn_start.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI start button, ornate golden fantasy button, 200x60 pixels, horizontal pill shape, glowing edges, dark center gradient, medieval RPG style, no text, clean design, slight 3D bevel",
	},
	{
		Name:     "ui_skilltree_bg",
		Filename: "ui_skilltree_bg.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI skill tree background panel, dark parchment texture, 1024x768 pixels, ornate border frame, medieval fantasy RPG style, subtle rune patterns, dark brown and gold tones, no text, clean design",
	},
	{
		Name:     "ui_tab_active",
		Filename: "ui_tab_active.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI active tab button, bright golden glowing tab, 150x40 pixels, horizontal rounded top rectangle, fantasy RPG style, selected state, bright, no text",
	},
	{
		Name:     "ui_tab_inactive",
		Filename: "ui_tab_inactive.png",
		Category: model.ImageCategoryUI,
		Dir:      "ui",
		Prompt:   "game UI inactive tab button, dark grey muted tab, 150x40 pixels, horizontal rounded top rectangle, fantasy RPG style, unselected state, dim, no text",
	},
	// Backgrounds and textures
	{
		Name:     "bg_title",
		Filename: "bg_title.png",
		Category: model.ImageCategoryBackgrounds,
		Dir:      "ui",
		Prompt:   "dark fantasy castle on mountain peak, dragon silhouette flying across full moon, moonlit night sky, dramatic clouds, epic RPG title screen background, 1920x1080 pixels, cinematic composition, stylized cartoon fantasy, vibrant colors, no text, no watermark",
	},
	{
		Name:     "bg_town_sky",
		Filename: "bg_town_sky.png",
		Category: model.ImageCategoryBackgrounds,
		Dir:      "textures",
		Prompt:   "fantasy village panoramic sky, warm sunset with orange and purple clouds, peaceful countryside vista, distant mountains, 2048x1024 pixels, equirectangular panorama, stylized cartoon fantasy, vibrant warm colors, no text, no watermark",
	},
	{
		Name:     "bg_dungeon",
		Filename: "bg_dungeon.png",
		Category: model.ImageCategoryBackgrounds,
		Dir:      "textures",
		Prompt:   "dark dungeon cave interior panorama, flickering torch light, stone walls, mysterious shadows, stalactites, 2048x1024 pixels, equirectangular panorama, stylized cartoon fantasy, moody atmosphere, no text, no watermark",
	},
	{
		Name:     "tex_grass",
		Filename: "tex_grass.png",
		Category: model.ImageCategoryBackgrounds,
		Dir:      "textures",
		Prompt:   "seamless grass texture, top down view, lush green grass blades, 512x512 pixels, tileable seamless pattern, stylized cartoon style, game terrain texture, clean, no text",
	},
	{
		Name:     "tex_cobblestone",
		Filename: "tex_cobblestone.png",
		Category: model.ImageCategoryBackgrounds,
		Dir:      "textures",
		Prompt:   "seamless cobblestone texture, medieval stone path, top down view, 512x512 pixels, tileable seamless pattern, stylized cartoon style, warm grey and brown tones, game terrain texture, clean, no text",
	},
	{
		Name:     "tex_dungeon_floor",
		Filename: "tex_dungeon_floor.png",
		Category: model.ImageCategoryBackgrounds,
		Dir:      "textures",
		Prompt:   "seamless dark stone floor texture, cracked ancient stone tiles, top down view, 512x512 pixels, tileable seamless pattern, stylized cartoon style, dark grey with subtle moss, game terrain texture, clean, no text",
	},
	{
		Name:     "tex_ruins_wall",
		Filename: "tex_ruins_wall.png",
		Category: model.ImageCategoryBackgrounds,
		Dir:      "textures",
		Prompt:   "seamless ancient stone wall texture, front view, weathered stone blocks, faintly glowing blue runes, cracks and vines, 512x512 pixels, tileable seamless pattern, stylized cartoon style, fantasy RPG dungeon wall, clean, no text",
	},
	// Effect textures
	{
		Name:     "fx_slash_arc",
		Filename: "fx_slash_arc.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX slash effect, single dynamic curved sword slash trail, glowing white energy with light blue edge glow, motion blur trail, stylized anime action game style, clean sharp edges, transparent background (alpha channel), centered composition, 512x512, no text, no watermark, no background noise",
	},
	{
		Name:     "fx_slash_heavy",
		Filename: "fx_slash_heavy.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX heavy sword slash, large powerful downward diagonal energy slash, glowing orange-gold energy with fire sparks, thick trail with dynamic motion, stylized fantasy RPG action game style, transparent background (alpha channel), centered, 512x512, no text, no watermark",
	},
	{
		Name:     "fx_hit_spark",
		Filename: "fx_hit_spark.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX hit impact spark, radial burst of bright golden-white sparks, small explosion of light particles radiating outward, comic action style, transparent background (alpha channel), centered composition, 256x256, no text, no watermark, clean edges",
	},
	{
		Name:     "fx_fireball",
		Filename: "fx_fireball.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX fireball projectile, bright burning orange-red fireball with trailing flames, hot glowing core with wispy fire edges, stylized cartoon flames, fantasy RPG magic spell style, dynamic motion feeling, transparent background (alpha channel), centered, 256x256, no text, no watermark",
	},
	{
		Name:     "fx_fire_explosion",
		Filename: "fx_fire_explosion.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX fire explosion, large radial burst of flames and sparks, orange and red with bright yellow center, stylized cartoon explosion, fantasy RPG magic spell detonation, dynamic expanding shape, transparent background (alpha channel), centered, 512x512, no text, no watermark",
	},
	{
		Name:     "fx_ice_shard",
		Filename: "fx_ice_shard.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX ice crystal shard, sharp translucent blue ice crystal, glowing icy blue with white frost highlights, faceted gem-like surface, cold mist wisps around edges, stylized fantasy RPG style, transparent background (alpha channel), centered, 256x256, no text, no watermark",
	},
	{
		Name:     "fx_ice_explosion",
		Filename: "fx_ice_explosion.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX ice explosion, radial burst of ice crystals and snowflakes, light blue and white with frozen mist, sharp crystalline fragments flying outward, fantasy RPG frost magic spell effect, transparent background (alpha channel), centered, 512x512, no text, no watermark",
	},
	{
		Name:     "fx_frost_ring",
		Filename: "fx_frost_ring.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX frost magic circle on ground, circular ice rune pattern, glowing icy blue lines forming an intricate circular pattern, frozen crystalline edges, snowflake motifs, top-down view, transparent background (alpha channel), 512x512, no text, no watermark",
	},
	{
		Name:     "fx_dark_orb",
		Filename: "fx_dark_orb.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX dark magic energy orb, swirling purple-black void sphere, glowing dark purple edges with violet energy wisps, ominous dark magic spell, gravitational distortion effect, transparent background (alpha channel), centered, 256x256, no text, no watermark",
	},
	{
		Name:     "fx_dark_explosion",
		Filename: "fx_dark_explosion.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX dark magic explosion, expanding purple-black energy burst, violet and indigo swirling energy with dark center, dark magic spell detonation, ominous fantasy RPG style, transparent background (alpha channel), centered, 512x512, no text, no watermark",
	},
	{
		Name:     "fx_beam_magic",
		Filename: "fx_beam_magic.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX magic beam laser ray, horizontal bright magenta-purple energy beam, glowing hot center with energy wisps along edges, straight line, stylized fantasy RPG magic beam attack, horizontal orientation, transparent background (alpha channel), 512x128, no text, no watermark",
	},
	{
		Name:     "fx_buff_aura",
		Filename: "fx_buff_aura.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX buff aura ring, circular glowing magic ring, golden-green energy rune circle, mystical symbols on ring, power-up enhancement magic effect, top-down view, transparent background (alpha channel), 512x512, no text, no watermark",
	},
	{
		Name:     "fx_magic_circle",
		Filename: "fx_magic_circle.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX magic summoning circle, intricate arcane circle with runes, glowing blue-white magical lines forming concentric patterns, mystical symbols and geometric patterns, top-down view, transparent background (alpha channel), 512x512, no text, no watermark",
	},
	{
		Name:     "fx_ground_impact",
		Filename: "fx_ground_impact.png",
		Category: model.ImageCategoryEffects,
		Dir:      "textures/effects",
		Prompt:   "game VFX ground impact shockwave, expanding concentric ring on ground, dust and debris particles radiating outward, earth-toned energy ring with cracks, top-down view, transparent background (alpha channel), 512x512, no text, no watermark",
	},
}
