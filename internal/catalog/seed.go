package catalog

import "github.com/quotevault/quotevault/internal/domain"

// seed is the immutable built-in catalog: 108 quotes across the eight
// categories. Never mutated at runtime.
var seed = []domain.Quote{
	{ID: "1", Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Category: domain.CategoryMotivation},
	{ID: "2", Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt", Category: domain.CategoryMotivation},
	{ID: "3", Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius", Category: domain.CategoryMotivation},
	{ID: "4", Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill", Category: domain.CategoryMotivation},
	{ID: "5", Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt", Category: domain.CategoryMotivation},
	{ID: "6", Text: "Strive not to be a success, but rather to be of value.", Author: "Albert Einstein", Category: domain.CategoryMotivation},
	{ID: "7", Text: "The only limit to our realization of tomorrow will be our doubts of today.", Author: "Franklin D. Roosevelt", Category: domain.CategoryMotivation},
	{ID: "8", Text: "What you get by achieving your goals is not as important as what you become by achieving your goals.", Author: "Zig Ziglar", Category: domain.CategoryMotivation},
	{ID: "9", Text: "Your time is limited, don't waste it living someone else's life.", Author: "Steve Jobs", Category: domain.CategoryMotivation},
	{ID: "10", Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb", Category: domain.CategoryMotivation},
	{ID: "11", Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson", Category: domain.CategoryMotivation},
	{ID: "12", Text: "Everything you've ever wanted is on the other side of fear.", Author: "George Addair", Category: domain.CategoryMotivation},
	{ID: "13", Text: "The only impossible journey is the one you never begin.", Author: "Tony Robbins", Category: domain.CategoryMotivation},
	{ID: "14", Text: "Act as if what you do makes a difference. It does.", Author: "William James", Category: domain.CategoryMotivation},
	{ID: "15", Text: "What lies behind us and what lies before us are tiny matters compared to what lies within us.", Author: "Ralph Waldo Emerson", Category: domain.CategoryMotivation},
	{ID: "16", Text: "The best thing to hold onto in life is each other.", Author: "Audrey Hepburn", Category: domain.CategoryLove},
	{ID: "17", Text: "Love is composed of a single soul inhabiting two bodies.", Author: "Aristotle", Category: domain.CategoryLove},
	{ID: "18", Text: "Where there is love there is life.", Author: "Mahatma Gandhi", Category: domain.CategoryLove},
	{ID: "19", Text: "You know you're in love when you can't fall asleep because reality is finally better than your dreams.", Author: "Dr. Seuss", Category: domain.CategoryLove},
	{ID: "20", Text: "The greatest thing you'll ever learn is just to love and be loved in return.", Author: "Eden Ahbez", Category: domain.CategoryLove},
	{ID: "21", Text: "To love and be loved is to feel the sun from both sides.", Author: "David Viscott", Category: domain.CategoryLove},
	{ID: "22", Text: "Love recognizes no barriers. It jumps hurdles, leaps fences, penetrates walls to arrive at its destination full of hope.", Author: "Maya Angelou", Category: domain.CategoryLove},
	{ID: "23", Text: "The heart has its reasons which reason knows not.", Author: "Blaise Pascal", Category: domain.CategoryLove},
	{ID: "24", Text: "Being deeply loved by someone gives you strength, while loving someone deeply gives you courage.", Author: "Lao Tzu", Category: domain.CategoryLove},
	{ID: "25", Text: "Love is when the other person's happiness is more important than your own.", Author: "H. Jackson Brown Jr.", Category: domain.CategoryLove},
	{ID: "26", Text: "In all the world, there is no heart for me like yours.", Author: "Maya Angelou", Category: domain.CategoryLove},
	{ID: "27", Text: "The best love is the kind that awakens the soul and makes us reach for more.", Author: "Nicholas Sparks", Category: domain.CategoryLove},
	{ID: "28", Text: "Love is friendship that has caught fire.", Author: "Ann Landers", Category: domain.CategoryLove},
	{ID: "29", Text: "A loving heart is the truest wisdom.", Author: "Charles Dickens", Category: domain.CategoryLove},
	{ID: "30", Text: "Love is not about how many days, months, or years you have been together. Love is about how much you love each other every single day.", Author: "Unknown", Category: domain.CategoryLove},
	{ID: "31", Text: "Success usually comes to those who are too busy to be looking for it.", Author: "Henry David Thoreau", Category: domain.CategorySuccess},
	{ID: "32", Text: "The road to success and the road to failure are almost exactly the same.", Author: "Colin R. Davis", Category: domain.CategorySuccess},
	{ID: "33", Text: "Success is walking from failure to failure with no loss of enthusiasm.", Author: "Winston Churchill", Category: domain.CategorySuccess},
	{ID: "34", Text: "Don't be afraid to give up the good to go for the great.", Author: "John D. Rockefeller", Category: domain.CategorySuccess},
	{ID: "35", Text: "I find that the harder I work, the more luck I seem to have.", Author: "Thomas Jefferson", Category: domain.CategorySuccess},
	{ID: "36", Text: "Success is not the key to happiness. Happiness is the key to success.", Author: "Albert Schweitzer", Category: domain.CategorySuccess},
	{ID: "37", Text: "The secret of success is to do the common thing uncommonly well.", Author: "John D. Rockefeller Jr.", Category: domain.CategorySuccess},
	{ID: "38", Text: "Try not to become a man of success. Rather become a man of value.", Author: "Albert Einstein", Category: domain.CategorySuccess},
	{ID: "39", Text: "Success is getting what you want. Happiness is wanting what you get.", Author: "Dale Carnegie", Category: domain.CategorySuccess},
	{ID: "40", Text: "The only place where success comes before work is in the dictionary.", Author: "Vidal Sassoon", Category: domain.CategorySuccess},
	{ID: "41", Text: "Success seems to be connected with action. Successful people keep moving.", Author: "Conrad Hilton", Category: domain.CategorySuccess},
	{ID: "42", Text: "There are no secrets to success. It is the result of preparation, hard work, and learning from failure.", Author: "Colin Powell", Category: domain.CategorySuccess},
	{ID: "43", Text: "Success is not how high you have climbed, but how you make a positive difference to the world.", Author: "Roy T. Bennett", Category: domain.CategorySuccess},
	{ID: "44", Text: "The successful warrior is the average man, with laser-like focus.", Author: "Bruce Lee", Category: domain.CategorySuccess},
	{ID: "45", Text: "Success is liking yourself, liking what you do, and liking how you do it.", Author: "Maya Angelou", Category: domain.CategorySuccess},
	{ID: "46", Text: "The only true wisdom is in knowing you know nothing.", Author: "Socrates", Category: domain.CategoryWisdom},
	{ID: "47", Text: "In the middle of difficulty lies opportunity.", Author: "Albert Einstein", Category: domain.CategoryWisdom},
	{ID: "48", Text: "The mind is everything. What you think you become.", Author: "Buddha", Category: domain.CategoryWisdom},
	{ID: "49", Text: "Knowledge speaks, but wisdom listens.", Author: "Jimi Hendrix", Category: domain.CategoryWisdom},
	{ID: "50", Text: "The wise man does at once what the fool does finally.", Author: "Niccolo Machiavelli", Category: domain.CategoryWisdom},
	{ID: "51", Text: "Turn your wounds into wisdom.", Author: "Oprah Winfrey", Category: domain.CategoryWisdom},
	{ID: "52", Text: "The more I read, the more I acquire, the more certain I am that I know nothing.", Author: "Voltaire", Category: domain.CategoryWisdom},
	{ID: "53", Text: "Wisdom is not a product of schooling but of the lifelong attempt to acquire it.", Author: "Albert Einstein", Category: domain.CategoryWisdom},
	{ID: "54", Text: "By three methods we may learn wisdom: First, by reflection, which is noblest; Second, by imitation, which is easiest; and third by experience, which is the bitterest.", Author: "Confucius", Category: domain.CategoryWisdom},
	{ID: "55", Text: "The fool doth think he is wise, but the wise man knows himself to be a fool.", Author: "William Shakespeare", Category: domain.CategoryWisdom},
	{ID: "56", Text: "It is the mark of an educated mind to be able to entertain a thought without accepting it.", Author: "Aristotle", Category: domain.CategoryWisdom},
	{ID: "57", Text: "Knowing yourself is the beginning of all wisdom.", Author: "Aristotle", Category: domain.CategoryWisdom},
	{ID: "58", Text: "The journey of a thousand miles begins with one step.", Author: "Lao Tzu", Category: domain.CategoryWisdom},
	{ID: "59", Text: "He who knows others is wise. He who knows himself is enlightened.", Author: "Lao Tzu", Category: domain.CategoryWisdom},
	{ID: "60", Text: "Patience is the companion of wisdom.", Author: "Saint Augustine", Category: domain.CategoryWisdom},
	{ID: "61", Text: "I'm not superstitious, but I am a little stitious.", Author: "Michael Scott", Category: domain.CategoryHumor},
	{ID: "62", Text: "Behind every great man is a woman rolling her eyes.", Author: "Jim Carrey", Category: domain.CategoryHumor},
	{ID: "63", Text: "I'm not lazy, I'm on energy-saving mode.", Author: "Unknown", Category: domain.CategoryHumor},
	{ID: "64", Text: "The only mystery in life is why the kamikaze pilots wore helmets.", Author: "Al McGuire", Category: domain.CategoryHumor},
	{ID: "65", Text: "I used to think I was indecisive, but now I'm not so sure.", Author: "Unknown", Category: domain.CategoryHumor},
	{ID: "66", Text: "Light travels faster than sound. This is why some people appear bright until you hear them speak.", Author: "Alan Dundes", Category: domain.CategoryHumor},
	{ID: "67", Text: "I'm not arguing, I'm just explaining why I'm right.", Author: "Unknown", Category: domain.CategoryHumor},
	{ID: "68", Text: "The road to success is dotted with many tempting parking spaces.", Author: "Will Rogers", Category: domain.CategoryHumor},
	{ID: "69", Text: "I'm on a whiskey diet. I've lost three days already.", Author: "Tommy Cooper", Category: domain.CategoryHumor},
	{ID: "70", Text: "Age is something that doesn't matter, unless you are a cheese.", Author: "Luis Buñuel", Category: domain.CategoryHumor},
	{ID: "71", Text: "I always wanted to be somebody, but now I realize I should have been more specific.", Author: "Lily Tomlin", Category: domain.CategoryHumor},
	{ID: "72", Text: "A day without laughter is a day wasted.", Author: "Charlie Chaplin", Category: domain.CategoryHumor},
	{ID: "73", Text: "Life is what happens when you're busy making other plans.", Author: "John Lennon", Category: domain.CategoryLife},
	{ID: "74", Text: "In three words I can sum up everything I've learned about life: it goes on.", Author: "Robert Frost", Category: domain.CategoryLife},
	{ID: "75", Text: "Life is really simple, but we insist on making it complicated.", Author: "Confucius", Category: domain.CategoryLife},
	{ID: "76", Text: "The purpose of our lives is to be happy.", Author: "Dalai Lama", Category: domain.CategoryLife},
	{ID: "77", Text: "Life is 10% what happens to us and 90% how we react to it.", Author: "Charles R. Swindoll", Category: domain.CategoryLife},
	{ID: "78", Text: "Life is either a daring adventure or nothing at all.", Author: "Helen Keller", Category: domain.CategoryLife},
	{ID: "79", Text: "The biggest adventure you can take is to live the life of your dreams.", Author: "Oprah Winfrey", Category: domain.CategoryLife},
	{ID: "80", Text: "Life is short, and it is up to you to make it sweet.", Author: "Sarah Louise Delany", Category: domain.CategoryLife},
	{ID: "81", Text: "Do not dwell in the past, do not dream of the future, concentrate the mind on the present moment.", Author: "Buddha", Category: domain.CategoryLife},
	{ID: "82", Text: "Life is a journey, not a destination.", Author: "Ralph Waldo Emerson", Category: domain.CategoryLife},
	{ID: "83", Text: "The unexamined life is not worth living.", Author: "Socrates", Category: domain.CategoryLife},
	{ID: "84", Text: "Life isn't about finding yourself. Life is about creating yourself.", Author: "George Bernard Shaw", Category: domain.CategoryLife},
	{ID: "85", Text: "A friend is someone who knows all about you and still loves you.", Author: "Elbert Hubbard", Category: domain.CategoryFriendship},
	{ID: "86", Text: "Friendship is born at that moment when one person says to another, \"What! You too? I thought I was the only one.\"", Author: "C.S. Lewis", Category: domain.CategoryFriendship},
	{ID: "87", Text: "A real friend is one who walks in when the rest of the world walks out.", Author: "Walter Winchell", Category: domain.CategoryFriendship},
	{ID: "88", Text: "True friendship comes when the silence between two people is comfortable.", Author: "David Tyson", Category: domain.CategoryFriendship},
	{ID: "89", Text: "Friends are the family you choose.", Author: "Jess C. Scott", Category: domain.CategoryFriendship},
	{ID: "90", Text: "The greatest gift of life is friendship, and I have received it.", Author: "Hubert H. Humphrey", Category: domain.CategoryFriendship},
	{ID: "91", Text: "A single rose can be my garden... a single friend, my world.", Author: "Leo Buscaglia", Category: domain.CategoryFriendship},
	{ID: "92", Text: "Walking with a friend in the dark is better than walking alone in the light.", Author: "Helen Keller", Category: domain.CategoryFriendship},
	{ID: "93", Text: "Friendship is the only cement that will ever hold the world together.", Author: "Woodrow Wilson", Category: domain.CategoryFriendship},
	{ID: "94", Text: "There is nothing on this earth more to be prized than true friendship.", Author: "Thomas Aquinas", Category: domain.CategoryFriendship},
	{ID: "95", Text: "Friends show their love in times of trouble, not in happiness.", Author: "Euripides", Category: domain.CategoryFriendship},
	{ID: "96", Text: "A friend is one that knows you as you are, understands where you have been, and still allows you to grow.", Author: "William Shakespeare", Category: domain.CategoryFriendship},
	{ID: "97", Text: "Happiness is not something ready made. It comes from your own actions.", Author: "Dalai Lama", Category: domain.CategoryHappiness},
	{ID: "98", Text: "The secret of happiness is not in doing what one likes, but in liking what one does.", Author: "James M. Barrie", Category: domain.CategoryHappiness},
	{ID: "99", Text: "Happiness is when what you think, what you say, and what you do are in harmony.", Author: "Mahatma Gandhi", Category: domain.CategoryHappiness},
	{ID: "100", Text: "The happiness of your life depends upon the quality of your thoughts.", Author: "Marcus Aurelius", Category: domain.CategoryHappiness},
	{ID: "101", Text: "Happiness is not a goal; it is a by-product.", Author: "Eleanor Roosevelt", Category: domain.CategoryHappiness},
	{ID: "102", Text: "For every minute you are angry you lose sixty seconds of happiness.", Author: "Ralph Waldo Emerson", Category: domain.CategoryHappiness},
	{ID: "103", Text: "Count your age by friends, not years. Count your life by smiles, not tears.", Author: "John Lennon", Category: domain.CategoryHappiness},
	{ID: "104", Text: "The most important thing is to enjoy your life—to be happy—it's all that matters.", Author: "Audrey Hepburn", Category: domain.CategoryHappiness},
	{ID: "105", Text: "Happiness is a warm puppy.", Author: "Charles M. Schulz", Category: domain.CategoryHappiness},
	{ID: "106", Text: "Think of all the beauty still left around you and be happy.", Author: "Anne Frank", Category: domain.CategoryHappiness},
	{ID: "107", Text: "Happiness depends upon ourselves.", Author: "Aristotle", Category: domain.CategoryHappiness},
	{ID: "108", Text: "The only way to find true happiness is to risk being completely cut open.", Author: "Chuck Palahniuk", Category: domain.CategoryHappiness},}
