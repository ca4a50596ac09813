package catalog

import "github.com/desertthunder/encore/internal/models"

func song(id, title, character, vocalRange string, kind models.SongType, act int) models.Song {
	return models.Song{ID: id, Title: title, Character: character, VocalRange: vocalRange, Type: kind, Act: act}
}

func role(name, vocalRange, description string) models.Character {
	return models.Character{Name: name, VocalRange: vocalRange, Description: description}
}

// withShowIDs stamps each song with its show's id.
func withShowIDs(shows []models.Show) []models.Show {
	for i := range shows {
		for j := range shows[i].Songs {
			shows[i].Songs[j].ShowID = shows[i].ID
		}
	}
	return shows
}

var bundledShows = withShowIDs([]models.Show{
	{
		ID:       "hamilton",
		Title:    "Hamilton",
		Composer: "Lin-Manuel Miranda",
		Lyricist: "Lin-Manuel Miranda",
		Year:     2015,
		Genre:    models.GenreContemporary,
		Synopsis: "The story of founding father Alexander Hamilton, told through hip-hop, R&B and traditional show tunes.",
		Songs: []models.Song{
			song("ham-1", "Alexander Hamilton", "Company", models.MixedRange, models.SongEnsemble, 1),
			song("ham-2", "My Shot", "Alexander Hamilton", "Baritone/Tenor", models.SongSolo, 1),
			song("ham-3", "Guns and Ships", "Lafayette", "Baritone", models.SongSolo, 1),
			song("ham-4", "Satisfied", "Angelica Schuyler", "Mezzo-Soprano/Belt", models.SongSolo, 1),
			song("ham-5", "Burn", "Eliza Hamilton", "Soprano", models.SongSolo, 2),
			song("ham-6", "You'll Be Back", "King George III", "Tenor", models.SongSolo, 1),
			song("ham-7", "Wait for It", "Aaron Burr", "Tenor", models.SongSolo, 1),
		},
		Characters: []models.Character{
			role("Alexander Hamilton", "Baritone/Tenor", "Ambitious immigrant who rises to Treasury Secretary"),
			role("Aaron Burr", "Tenor", "Hamilton's friend, rival and eventual killer"),
			role("Eliza Hamilton", "Soprano", "Hamilton's devoted wife"),
			role("Angelica Schuyler", "Mezzo-Soprano/Belt", "Eliza's brilliant older sister"),
			role("King George III", "Tenor", "The jilted monarch"),
		},
	},
	{
		ID:       "wicked",
		Title:    "Wicked",
		Composer: "Stephen Schwartz",
		Lyricist: "Stephen Schwartz",
		Year:     2003,
		Genre:    models.GenreContemporary,
		Synopsis: "The untold story of the witches of Oz, and the unlikely friendship between Elphaba and Glinda.",
		Songs: []models.Song{
			song("wic-1", "No One Mourns the Wicked", "Company", models.MixedRange, models.SongEnsemble, 1),
			song("wic-2", "The Wizard and I", "Elphaba", "Mezzo-Soprano/Belt", models.SongSolo, 1),
			song("wic-3", "Popular", "Glinda", "Soprano", models.SongSolo, 1),
			song("wic-4", "Defying Gravity", "Elphaba", "Mezzo-Soprano/Belt", models.SongSolo, 1),
			song("wic-5", "I'm Not That Girl", "Elphaba", "Mezzo-Soprano", models.SongSolo, 1),
			song("wic-6", "No Good Deed", "Elphaba", "Mezzo-Soprano/Belt", models.SongSolo, 2),
			song("wic-7", "For Good", "Elphaba & Glinda", "Soprano/Mezzo-Soprano", models.SongDuet, 2),
		},
		Characters: []models.Character{
			role("Elphaba", "Mezzo-Soprano/Belt", "The misunderstood green-skinned witch"),
			role("Glinda", "Soprano", "The popular, bubbly good witch"),
			role("Fiyero", "Baritone/Tenor", "A carefree prince who falls for Elphaba"),
			role("The Wizard", "Baritone", "The charming fraud who rules Oz"),
		},
	},
	{
		ID:       "phantom",
		Title:    "The Phantom of the Opera",
		Composer: "Andrew Lloyd Webber",
		Lyricist: "Charles Hart",
		Year:     1986,
		Genre:    models.GenreClassic,
		Synopsis: "A disfigured musical genius haunts the Paris Opera House and falls for the young soprano Christine.",
		Songs: []models.Song{
			song("pha-1", "Think of Me", "Christine Daaé", "Soprano", models.SongSolo, 1),
			song("pha-2", "Wishing You Were Somehow Here Again", "Christine Daaé", "Soprano", models.SongSolo, 2),
			song("pha-3", "All I Ask of You", "Raoul & Christine", "Soprano/Baritone", models.SongDuet, 1),
			song("pha-4", "The Phantom of the Opera", "The Phantom & Christine", "Tenor/Soprano", models.SongDuet, 1),
			song("pha-5", "The Music of the Night", "The Phantom", "Tenor", models.SongSolo, 1),
			song("pha-6", "Masquerade", "Company", models.MixedRange, models.SongEnsemble, 2),
		},
		Characters: []models.Character{
			role("The Phantom", "Tenor", "The masked genius beneath the opera house"),
			role("Christine Daaé", "Soprano", "A chorus girl turned leading lady"),
			role("Raoul", "Baritone", "Christine's childhood sweetheart"),
			role("Carlotta", "Soprano", "The opera's temperamental prima donna"),
		},
	},
	{
		ID:       "les-miserables",
		Title:    "Les Misérables",
		Composer: "Claude-Michel Schönberg",
		Lyricist: "Herbert Kretzmer",
		Year:     1985,
		Genre:    models.GenreClassic,
		Synopsis: "Ex-convict Jean Valjean seeks redemption in 19th-century France while pursued by the relentless Javert.",
		Songs: []models.Song{
			song("les-1", "I Dreamed a Dream", "Fantine", "Mezzo-Soprano", models.SongSolo, 1),
			song("les-2", "On My Own", "Éponine", "Mezzo-Soprano/Belt", models.SongSolo, 2),
			song("les-3", "Bring Him Home", "Jean Valjean", "Tenor", models.SongSolo, 2),
			song("les-4", "Stars", "Javert", "Baritone", models.SongSolo, 1),
			song("les-5", "One Day More", "Company", models.MixedRange, models.SongEnsemble, 1),
			song("les-6", "Master of the House", "Thénardier", "Baritone", models.SongSolo, 1),
		},
		Characters: []models.Character{
			role("Jean Valjean", "Baritone/Tenor", "A paroled prisoner seeking a new life"),
			role("Javert", "Bass/Baritone", "The police inspector who hunts him"),
			role("Fantine", "Mezzo-Soprano", "A factory worker forced into destitution"),
			role("Éponine", "Mezzo-Soprano/Belt", "The Thénardiers' lovelorn daughter"),
			role("Cosette", "Soprano", "Fantine's daughter, raised by Valjean"),
		},
	},
	{
		ID:       "chicago",
		Title:    "Chicago",
		Composer: "John Kander",
		Lyricist: "Fred Ebb",
		Year:     1975,
		Genre:    models.GenreRevival,
		Synopsis: "Murderesses Roxie Hart and Velma Kelly chase fame and acquittal in Jazz Age Chicago.",
		Songs: []models.Song{
			song("chi-1", "All That Jazz", "Velma Kelly", "Alto/Mezzo", models.SongSolo, 1),
			song("chi-2", "Cell Block Tango", "Company", models.MixedRange, models.SongEnsemble, 1),
			song("chi-3", "Mister Cellophane", "Amos Hart", "Baritone", models.SongSolo, 2),
			song("chi-4", "Roxie", "Roxie Hart", "Mezzo-Soprano/Belt", models.SongSolo, 1),
			song("chi-5", "Razzle Dazzle", "Billy Flynn", "Baritone/Tenor", models.SongSolo, 2),
		},
		Characters: []models.Character{
			role("Roxie Hart", "Mezzo-Soprano/Belt", "A chorus girl who dreams of vaudeville stardom"),
			role("Velma Kelly", "Alto/Mezzo", "A vaudevillian jailed for double murder"),
			role("Billy Flynn", "Baritone/Tenor", "A slick lawyer who has never lost a case"),
			role("Amos Hart", "Baritone", "Roxie's overlooked husband"),
		},
	},
	{
		ID:       "rent",
		Title:    "Rent",
		Composer: "Jonathan Larson",
		Lyricist: "Jonathan Larson",
		Year:     1996,
		Genre:    models.GenreRock,
		Synopsis: "A year in the lives of struggling young artists in New York's East Village under the shadow of HIV/AIDS.",
		Songs: []models.Song{
			song("ren-1", "Seasons of Love", "Company", models.MixedRange, models.SongEnsemble, 2),
			song("ren-2", "One Song Glory", "Roger Davis", "Tenor", models.SongSolo, 1),
			song("ren-3", "Out Tonight", "Mimi Márquez", "Mezzo-Soprano/Belt", models.SongSolo, 1),
			song("ren-4", "Take Me or Leave Me", "Maureen & Joanne", "Mezzo-Soprano/Belt", models.SongDuet, 2),
			song("ren-5", "La Vie Bohème", "Company", models.MixedRange, models.SongEnsemble, 1),
		},
		Characters: []models.Character{
			role("Roger Davis", "Tenor", "A songwriter searching for one last great song"),
			role("Mimi Márquez", "Mezzo-Soprano/Belt", "An exotic dancer who lives downstairs"),
			role("Mark Cohen", "Tenor", "A filmmaker documenting his friends"),
			role("Maureen Johnson", "Mezzo-Soprano/Belt", "A flamboyant performance artist"),
		},
	},
	{
		ID:       "dear-evan-hansen",
		Title:    "Dear Evan Hansen",
		Composer: "Benj Pasek & Justin Paul",
		Lyricist: "Benj Pasek & Justin Paul",
		Year:     2016,
		Genre:    models.GenreContemporary,
		Synopsis: "An anxious teenager is swept up in a lie after a classmate's death and finds the belonging he always wanted.",
		Songs: []models.Song{
			song("deh-1", "Waving Through a Window", "Evan Hansen", "Tenor", models.SongSolo, 1),
			song("deh-2", "For Forever", "Evan Hansen", "Tenor", models.SongSolo, 1),
			song("deh-3", "Words Fail", "Evan Hansen", "Tenor", models.SongSolo, 2),
			song("deh-4", "So Big/So Small", "Heidi Hansen", "Mezzo-Soprano", models.SongSolo, 2),
			song("deh-5", "You Will Be Found", "Company", models.MixedRange, models.SongEnsemble, 1),
		},
		Characters: []models.Character{
			role("Evan Hansen", "Tenor", "A high-school senior with social anxiety"),
			role("Heidi Hansen", "Mezzo-Soprano", "Evan's overworked single mother"),
			role("Zoe Murphy", "Mezzo-Soprano", "Connor's sister and Evan's crush"),
			role("Connor Murphy", "Baritone/Tenor", "A troubled classmate"),
		},
	},
	{
		ID:       "sweeney-todd",
		Title:    "Sweeney Todd",
		Composer: "Stephen Sondheim",
		Lyricist: "Stephen Sondheim",
		Year:     1979,
		Genre:    models.GenreDrama,
		Synopsis: "A barber returns to Victorian London to take revenge on the judge who stole his family.",
		Songs: []models.Song{
			song("swe-1", "The Ballad of Sweeney Todd", "Company", models.MixedRange, models.SongEnsemble, 1),
			song("swe-2", "Epiphany", "Sweeney Todd", "Baritone", models.SongSolo, 1),
			song("swe-3", "The Worst Pies in London", "Mrs. Lovett", "Mezzo-Soprano", models.SongSolo, 1),
			song("swe-4", "Green Finch and Linnet Bird", "Johanna", "Soprano", models.SongSolo, 1),
			song("swe-5", "A Little Priest", "Sweeney Todd & Mrs. Lovett", "Baritone/Mezzo-Soprano", models.SongDuet, 1),
			song("swe-6", "Not While I'm Around", "Tobias", "Tenor", models.SongSolo, 2),
		},
		Characters: []models.Character{
			role("Sweeney Todd", "Baritone", "The demon barber of Fleet Street"),
			role("Mrs. Lovett", "Mezzo-Soprano", "A pie-shop owner with a practical streak"),
			role("Johanna", "Soprano", "Sweeney's daughter, the judge's ward"),
			role("Judge Turpin", "Bass/Baritone", "The corrupt judge"),
		},
	},
	{
		ID:       "into-the-woods",
		Title:    "Into the Woods",
		Composer: "Stephen Sondheim",
		Lyricist: "Stephen Sondheim",
		Year:     1987,
		Genre:    models.GenreClassic,
		Synopsis: "Fairy-tale characters venture into the woods to make their wishes come true, and face the consequences.",
		Songs: []models.Song{
			song("itw-1", "Prologue: Into the Woods", "Company", models.MixedRange, models.SongEnsemble, 1),
			song("itw-2", "Giants in the Sky", "Jack", "Tenor", models.SongSolo, 1),
			song("itw-3", "On the Steps of the Palace", "Cinderella", "Soprano", models.SongSolo, 1),
			song("itw-4", "Last Midnight", "The Witch", "Mezzo-Soprano/Belt", models.SongSolo, 2),
			song("itw-5", "Agony", "Cinderella's Prince & Rapunzel's Prince", "Baritone/Tenor", models.SongDuet, 1),
		},
		Characters: []models.Character{
			role("The Witch", "Mezzo-Soprano/Belt", "A vain witch who wants her beauty back"),
			role("The Baker", "Baritone/Tenor", "A baker longing for a child"),
			role("Cinderella", "Soprano", "A girl who isn't sure what she wants"),
			role("Jack", "Tenor", "A boy who trades his cow for beans"),
		},
	},
	{
		ID:       "company",
		Title:    "Company",
		Composer: "Stephen Sondheim",
		Lyricist: "Stephen Sondheim",
		Year:     1970,
		Genre:    models.GenreComedy,
		Synopsis: "On their 35th birthday, a perennial bachelor takes stock of the married couples who are their friends.",
		Songs: []models.Song{
			song("com-1", "Company", "Company", models.MixedRange, models.SongEnsemble, 1),
			song("com-2", "Being Alive", "Bobby", "Baritone", models.SongSolo, 2),
			song("com-3", "The Ladies Who Lunch", "Joanne", "Alto", models.SongSolo, 2),
			song("com-4", "Getting Married Today", "Amy", "Soprano", models.SongSolo, 1),
			song("com-5", "Marry Me a Little", "Bobby", "Baritone", models.SongSolo, 1),
		},
		Characters: []models.Character{
			role("Bobby", "Baritone", "A single New Yorker surrounded by couples"),
			role("Joanne", "Alto", "A sardonic, much-married friend"),
			role("Amy", "Soprano", "A bride with cold feet"),
			role("Marta", "Mezzo-Soprano/Belt", "A free-spirited girlfriend"),
		},
	},
	{
		ID:       "six",
		Title:    "Six",
		Composer: "Toby Marlow & Lucy Moss",
		Lyricist: "Toby Marlow & Lucy Moss",
		Year:     2017,
		Genre:    models.GenreContemporary,
		Synopsis: "The six wives of Henry VIII take the mic to remix five hundred years of historical heartbreak.",
		Songs: []models.Song{
			song("six-1", "Ex-Wives", "The Queens", models.MixedRange, models.SongEnsemble, 1),
			song("six-2", "No Way", "Catherine of Aragon", "Mezzo-Soprano/Belt", models.SongSolo, 1),
			song("six-3", "Don't Lose Ur Head", "Anne Boleyn", "Mezzo-Soprano/Belt", models.SongSolo, 1),
			song("six-4", "Heart of Stone", "Jane Seymour", "Alto/Mezzo", models.SongSolo, 1),
			song("six-5", "Six", "The Queens", models.MixedRange, models.SongEnsemble, 1),
		},
		Characters: []models.Character{
			role("Catherine of Aragon", "Mezzo-Soprano/Belt", "The first queen, who refuses to go quietly"),
			role("Anne Boleyn", "Mezzo-Soprano/Belt", "The cheeky second queen"),
			role("Jane Seymour", "Alto/Mezzo", "The one he truly loved"),
			role("Catherine Parr", "Alto", "The survivor"),
		},
	},
	{
		ID:       "hadestown",
		Title:    "Hadestown",
		Composer: "Anaïs Mitchell",
		Lyricist: "Anaïs Mitchell",
		Year:     2019,
		Genre:    models.GenreContemporary,
		Synopsis: "A folk-opera retelling of Orpheus and Eurydice's journey to the underworld and back.",
		Songs: []models.Song{
			song("had-1", "Road to Hell", "Hermes & Company", models.MixedRange, models.SongEnsemble, 1),
			song("had-2", "Wait for Me", "Orpheus", "Tenor", models.SongSolo, 1),
			song("had-3", "Flowers", "Eurydice", "Mezzo-Soprano", models.SongSolo, 2),
			song("had-4", "Livin' It Up on Top", "Persephone", "Alto", models.SongSolo, 1),
			song("had-5", "Epic III", "Orpheus", "Tenor", models.SongSolo, 2),
			song("had-6", "Why We Build the Wall", "Hades", "Bass", models.SongSolo, 1),
		},
		Characters: []models.Character{
			role("Orpheus", "Tenor", "A poor young singer with a song to fix the world"),
			role("Eurydice", "Mezzo-Soprano", "A hungry young woman who takes Hades' bargain"),
			role("Hades", "Bass", "King of the industrial underworld"),
			role("Persephone", "Alto", "Hades' wife, goddess of spring"),
			role("Hermes", "Baritone", "The narrator and messenger god"),
		},
	},
})
